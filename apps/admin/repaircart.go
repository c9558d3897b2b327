package main

import (
	"fmt"
	"log"
	"os"

	"github.com/jjyf27/redpro/core/cart"
	logsvc "github.com/jjyf27/redpro/services/logger"
	"github.com/jjyf27/redpro/storage/cartfile"
)

// repairCart sanitizes the shared cart document in place. Sibling
// processes watching the file pick the rewrite up on their own.
func (cli *commandLine) repairCart() error {
	store, err := cartfile.Open(cli.conf.Cart.Path)
	if err != nil {
		return err
	}
	defer store.Close()

	cartLogger := logsvc.NewRollbarLogger(log.New(os.Stdout, "CART : ", log.LstdFlags), cli.conf)
	cartLogger.Enable(false)

	mgr := cart.NewManager(store, cart.NewBus(), cartLogger)
	if mgr.Repair() {
		fmt.Println("cart repaired")
	} else {
		fmt.Println("cart already clean")
	}
	return nil
}
