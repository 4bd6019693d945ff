package cmd

import (
	"fmt"
	"io"
	"os"

	apierr "github.com/goastler/sha-256/errors"
	"github.com/goastler/sha-256/logging"
	"github.com/goastler/sha-256/sha256"
	"github.com/goastler/sha-256/shautil"
	"github.com/spf13/cobra"
)

var sumFlagHex bool

// sumCmd represents the sum command
var sumCmd = &cobra.Command{
	Use:   "sum [message ...]",
	Short: "Print the SHA-256 digest of each message, or of stdin when no message is given",
	Run: func(cmd *cobra.Command, args []string) {
		if len(args) == 0 {
			sumStdin()
			return
		}
		for _, arg := range args {
			msg := []byte(arg)
			if sumFlagHex {
				decoded, err := shautil.DecodeString(arg)
				if err != nil {
					logging.CPrint(logging.FATAL, "invalid hex message", logging.LogFormat{"message": arg, "err": err, "code": apierr.ErrAPIDecodeHexString})
				}
				msg = decoded
			}
			digest := sha256.Sum256(msg)
			fmt.Printf("%s  %s\n", shautil.EncodeToString(digest[:]), arg)
		}
	},
}

// sumStdin streams stdin through one digest instance. The engine buffers
// internally, so chunk boundaries from io.Copy do not affect the result.
func sumStdin() {
	d := sha256.New()
	if _, err := io.Copy(d, os.Stdin); err != nil {
		code := apierr.ErrAPIOpenFile
		if err == sha256.ErrMessageTooLong {
			code = apierr.ErrAPIMessageTooLong
		}
		logging.CPrint(logging.FATAL, "failed to read stdin", logging.LogFormat{"err": err, "code": code})
	}
	digest := d.Sum32()
	fmt.Printf("%s  -\n", shautil.EncodeToString(digest[:]))
}

func init() {
	sumCmd.Flags().BoolVarP(&sumFlagHex, "hex", "x", false, "treat each message as hex-encoded bytes")
}
