package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/MMN3003/loopmint/src/mint/domain"
)

func newTokenIDCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tokenid",
		Short: "Convert between content ids and NFT token ids",
	}

	cmd.AddCommand(
		&cobra.Command{
			Use:   "encode CID",
			Short: "Print the token id for a CIDv0",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				id, err := domain.DeriveNFTID(args[0])
				if err != nil {
					return err
				}
				_, err = fmt.Fprintln(cmd.OutOrStdout(), id)
				return err
			},
		},
		&cobra.Command{
			Use:   "decode TOKEN_ID",
			Short: "Print the CIDv0 for a token id",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				cid, err := domain.DecodeNFTID(args[0])
				if err != nil {
					return err
				}
				_, err = fmt.Fprintln(cmd.OutOrStdout(), cid)
				return err
			},
		},
	)
	return cmd
}
