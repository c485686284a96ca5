package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/spf13/cobra"
	"github.com/tliron/commonlog"
	"pkt.systems/version"

	_ "github.com/tliron/commonlog/simple"
)

var log = commonlog.GetLogger("mdtype")

func init() {
	version.SetDefaultModule("pkt.systems/mdtype")
}

func newRootCmd() *cobra.Command {
	var verbose int

	rootCmd := &cobra.Command{
		Use:           "mdtype",
		Short:         "Render Markdown progressively, as if it were being typed",
		Version:       fmt.Sprint(version.Current()),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			commonlog.Configure(verbose, nil)
		},
	}
	rootCmd.PersistentFlags().CountVarP(&verbose, "verbose", "v", "Increase log verbosity (repeatable)")

	rootCmd.AddCommand(newRenderCmd())
	rootCmd.AddCommand(newSimulateCmd())
	rootCmd.AddCommand(newThemesCmd())
	return rootCmd
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	err := newRootCmd().ExecuteContext(ctx)
	stop()
	if err != nil {
		fmt.Fprintf(os.Stderr, "%s: %v\n", version.Module(), err)
		os.Exit(1)
	}
}
