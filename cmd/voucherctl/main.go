// Package main is the entry point for the voucherctl CLI.
package main

import (
	"os"

	"github.com/samandr77/microservices/voucher/cmd/voucherctl/cmd"
)

func main() {
	if err := cmd.NewRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
