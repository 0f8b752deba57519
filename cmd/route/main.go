package main

import (
	"fmt"
	"io"
	"os"

	"github.com/nkngn/payment-router/internal/corridors"
	"github.com/nkngn/payment-router/internal/logger"
	"github.com/nkngn/payment-router/internal/router"
)

func main() {
	path := "test/input.txt"
	if len(os.Args) > 1 {
		path = os.Args[1]
	}

	if err := run(path, os.Stdout, os.Stderr); err != nil {
		fmt.Fprintf(os.Stderr, "route: %v\n", err)
		os.Exit(1)
	}
}

func run(path string, stdout, stderr io.Writer) error {
	file, err := os.Open(path)
	if err != nil {
		return err
	}
	defer file.Close()

	// read input from file, build graph
	q, err := corridors.ReadQuery(file)
	if err != nil {
		return fmt.Errorf("read %s: %w", path, err)
	}

	log := logger.NewWithWriter(logger.Config{Level: "warn", Pretty: true}, stderr)
	r := router.New(q.Corridors, log)

	// find best route
	result, err := r.FindBestRoute(router.PaymentRequest{
		Amount:              q.Amount,
		SourceCurrency:      q.Source,
		DestinationCurrency: q.Destination,
	})
	if err != nil {
		return err
	}
	if result == nil {
		fmt.Fprintf(stdout, "%s->%s: no route\n", q.Source, q.Destination)
		return nil
	}

	fmt.Fprintf(stdout, "%s->%s\n", q.Source, q.Destination)
	fmt.Fprintf(stdout, "total_fee: %.6f\n", result.TotalFee)
	fmt.Fprintf(stdout, "total_received: %.6f\n", result.TotalReceived)
	return nil
}
