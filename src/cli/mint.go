package cli

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/MMN3003/loopmint/src/mint/domain"
)

func newMintCmd(app *App) *cobra.Command {
	var opts domain.MintOptions

	cmd := &cobra.Command{
		Use:   "mint",
		Short: "Mint the configured content id for the configured owner",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			minter, err := app.NewMinter(cmd.Context(), app.Config, app.Logger)
			if err != nil {
				return err
			}

			out, err := minter.Run(cmd.Context(), opts)
			if out != nil {
				fmt.Fprintf(cmd.OutOrStdout(), "token address: %s\n", out.TokenAddress)
			}
			if err != nil {
				return err
			}

			if opts.DryRun {
				return printJSON(cmd.OutOrStdout(), struct {
					*domain.MintRequest
					EddsaSignature string `json:"eddsaSignature"`
				}{out.Request, out.Signature})
			}
			return printJSON(cmd.OutOrStdout(), out.Result)
		},
	}

	cmd.Flags().StringVar(&opts.ContentID, "cid", "", "content id to mint (defaults to CID0)")
	cmd.Flags().BoolVar(&opts.DryRun, "dry-run", false, "sign the request but do not submit it")
	return cmd
}

func printJSON(w io.Writer, v any) error {
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(w, string(b))
	return err
}
