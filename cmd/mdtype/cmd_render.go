package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"pkt.systems/mdtype"
)

func newRenderCmd() *cobra.Command {
	var out outputFlags

	cmd := &cobra.Command{
		Use:   "render [inputs...]",
		Short: "Render Markdown from files, URLs or stdin as it arrives",
		Long: `Render Markdown progressively from files, http(s) URLs or stdin.

Inputs are concatenated. If no input is provided, Markdown is read from stdin.
Chunks are whatever the underlying reads return.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			return out.run(func(target mdtype.Target) error {
				if isSingleURL(args) {
					log.Infof("streaming %s", args[0])
					return mdtype.HTTPRender(ctx, mdtype.HTTPRenderRequest{
						URL:     args[0],
						Target:  target,
						Options: out.sessionOptions(),
					})
				}
				reader, closer, err := openInputs(ctx, args, out.strict)
				if err != nil {
					return fmt.Errorf("open input: %w", err)
				}
				if closer != nil {
					defer func() { _ = closer.Close() }()
				}
				sess := mdtype.NewSession(target, out.sessionOptions()...)
				if _, err := io.Copy(sess, reader); err != nil {
					return fmt.Errorf("render: %w", err)
				}
				return sess.Close()
			})
		},
	}
	out.bind(cmd.Flags())

	return cmd
}
