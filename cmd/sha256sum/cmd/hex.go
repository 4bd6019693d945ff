package cmd

import (
	"fmt"
	"os"

	apierr "github.com/goastler/sha-256/errors"
	"github.com/goastler/sha-256/logging"
	"github.com/goastler/sha-256/shautil"
	"github.com/spf13/cobra"
)

// hexCmd groups the codec commands used at the tool boundary.
var hexCmd = &cobra.Command{
	Use:   "hex",
	Short: "Encode bytes to or decode bytes from lowercase hex",
}

// hexEncodeCmd represents the hex encode command
var hexEncodeCmd = &cobra.Command{
	Use:   "encode <message>",
	Short: "Print the lowercase hex encoding of the message bytes",
	Args: func(cmd *cobra.Command, args []string) error {
		if err := cobra.ExactArgs(1)(cmd, args); err != nil {
			logging.CPrint(logging.ERROR, "wrong argument count", logging.LogFormat{"count": len(args)})
			return err
		}
		return nil
	},
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println(shautil.EncodeToString([]byte(args[0])))
	},
}

// hexDecodeCmd represents the hex decode command
var hexDecodeCmd = &cobra.Command{
	Use:   "decode <hex>",
	Short: "Print the bytes encoded by an even-length hex string",
	Args: func(cmd *cobra.Command, args []string) error {
		if err := cobra.ExactArgs(1)(cmd, args); err != nil {
			logging.CPrint(logging.ERROR, "wrong argument count", logging.LogFormat{"count": len(args)})
			return err
		}
		return nil
	},
	Run: func(cmd *cobra.Command, args []string) {
		data, err := shautil.DecodeString(args[0])
		if err != nil {
			code := apierr.ErrAPIDecodeHexString
			if err == shautil.ErrOddLengthHexString {
				code = apierr.ErrAPIOddHexLength
			}
			logging.CPrint(logging.ERROR, "invalid hex string", logging.LogFormat{"input": args[0], "err": err, "code": code})
			os.Exit(1)
		}
		os.Stdout.Write(data)
	},
}

func init() {
	hexCmd.AddCommand(hexEncodeCmd)
	hexCmd.AddCommand(hexDecodeCmd)
}
