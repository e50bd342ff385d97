package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/MMN3003/loopmint/src/mint/usecase"
)

func newAddressCmd(app *App) *cobra.Command {
	var owner string

	cmd := &cobra.Command{
		Use:   "address",
		Short: "Print the owner's counterfactual NFT contract address",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if owner == "" {
				owner = app.Config.OwnerAddress
			}
			if owner == "" {
				return errors.New("no owner: pass --owner or set ETH_ACCOUNT_ADDRESS")
			}

			addr, err := usecase.ComputeTokenAddress(owner, app.Config.NFT)
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), addr)
			return err
		},
	}

	cmd.Flags().StringVar(&owner, "owner", "", "owner address (defaults to ETH_ACCOUNT_ADDRESS)")
	return cmd
}
