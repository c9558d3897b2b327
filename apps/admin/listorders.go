package main

import (
	"fmt"
	"os"
	"text/tabwriter"
)

func (cli *commandLine) listOrders() error {
	orders, err := cli.ordSvc.QueryAll()
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "NUMBER\tDATE\tCUSTOMER\tMETHOD\tSTATUS\tTOTAL")
	for _, ord := range orders {
		fmt.Fprintf(
			w, "%s\t%s\t%s\t%s\t%s\tS/ %.2f\n",
			ord.Number, ord.PlacedAt.Format("2006-01-02 15:04"), ord.Customer.Name,
			ord.PaymentMethod, ord.Status, ord.Total,
		)
	}
	return w.Flush()
}
