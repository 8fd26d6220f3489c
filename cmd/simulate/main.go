package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"parkingsys/config"
	"parkingsys/pkg/logger"
	"parkingsys/pkg/telemetry"
	"parkingsys/service"
	"parkingsys/storage/memory"

	"github.com/facebookgo/clock"
)

type visit struct {
	name, id, plate, vehicle, tier string
	stay                           time.Duration
}

// visits are ordered by stay so the clock only moves forward.
var visits = []visit{
	{name: "Mehmet Demir", id: "P-2002", plate: "06 BB 22", vehicle: "motorcycle", tier: "staff", stay: 150 * time.Minute},
	{name: "Ayse Kaya", id: "S-1001", plate: "06 AA 11", vehicle: "car", tier: "student", stay: 3 * time.Hour},
}

func main() {
	cfg := config.Load()
	log := logger.New(cfg.ServiceName, cfg.LoggerLevel, cfg.LoggerOutput)
	ctx := context.Background()

	tel, err := telemetry.New(ctx, cfg)
	if err != nil {
		log.Error("Failed to initialize telemetry", logger.Error(err))
		os.Exit(1)
	}
	defer tel.Shutdown(ctx)

	clk := clock.NewMock()
	clk.Add(time.Since(time.Unix(0, 0)).Truncate(time.Hour))

	stg, err := memory.New(cfg, clk, log)
	if err != nil {
		log.Error("Failed to initialize storage", logger.Error(err))
		os.Exit(1)
	}
	defer stg.Close()

	svc, err := service.New(stg, clk, tel, log)
	if err != nil {
		log.Error("Failed to initialize services", logger.Error(err))
		os.Exit(1)
	}
	parking := svc.Parking()

	for _, v := range visits {
		if _, err := parking.Register(ctx, v.name, v.id, v.plate, v.vehicle); err != nil {
			log.Error("Failed to register driver", logger.String("plate", v.plate), logger.Error(err))
			os.Exit(1)
		}
		if _, err := parking.IssuePass(ctx, v.plate, v.tier); err != nil {
			log.Error("Failed to issue pass", logger.String("plate", v.plate), logger.Error(err))
			os.Exit(1)
		}
		if _, err := parking.Park(ctx, v.plate); err != nil {
			log.Error("Failed to park", logger.String("plate", v.plate), logger.Error(err))
			os.Exit(1)
		}
	}

	var elapsed time.Duration
	for _, v := range visits {
		clk.Add(v.stay - elapsed)
		elapsed = v.stay
		if _, err := parking.RemoveAndBill(ctx, v.plate); err != nil {
			log.Error("Failed to bill", logger.String("plate", v.plate), logger.Error(err))
			os.Exit(1)
		}
	}

	receipts, err := parking.Receipts(ctx)
	if err != nil {
		log.Error("Failed to list receipts", logger.Error(err))
		os.Exit(1)
	}

	var total float64
	for _, r := range receipts {
		total += r.Fee
		fmt.Printf("%s  %-8s %-12s %6.2f h  %7.2f TL\n", r.ID, r.Plate, r.Tier.Title(), r.Hours, r.Fee)
	}
	fmt.Printf("Total billed: %.2f TL\n", total)
}
