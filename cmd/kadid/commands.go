package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/libp2p/go-libp2p/core/peer"
	"github.com/multiformats/go-multibase"
	"github.com/spf13/cobra"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"

	"github.com/revistek/kademlia-dht/key"
	"github.com/revistek/kademlia-dht/key/keyutil"
	"github.com/revistek/kademlia-dht/key/sha1key160"
	"github.com/revistek/kademlia-dht/libp2p"
	"github.com/revistek/kademlia-dht/numeric"
	"github.com/revistek/kademlia-dht/util"
)

func newRootCmd(logger *zap.Logger) *cobra.Command {
	root := &cobra.Command{
		Use:           "kadid",
		Short:         "Decode and compare Kademlia identifiers",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(
		newDecodeCmd(logger),
		newMatchCmd(logger),
		newHashCmd(logger),
		newRandomCmd(logger),
		newPeerCmd(logger),
	)
	return root
}

func newDecodeCmd(logger *zap.Logger) *cobra.Command {
	var (
		fixed    bool
		maxBytes int
	)

	cmd := &cobra.Command{
		Use:   "decode <number>",
		Short: "Decode a decimal or 0x prefixed hexadecimal number",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			_, span := util.StartSpan(cmd.Context(), "decode", trace.WithAttributes(
				attribute.String("input", args[0]),
				attribute.Bool("fixed", fixed),
			))
			defer span.End()

			var (
				hexs, bits string
				raw        []byte
			)
			if fixed {
				nid, err := parseNodeID(args[0])
				if err != nil {
					return decodeFailed(logger, span, args[0], err)
				}
				hexs, bits, raw = nid.Hex(), key.BitString(nid), nid[:]
			} else {
				var opts []numeric.Option
				if maxBytes > 0 {
					opts = append(opts, numeric.WithMaxBytes(maxBytes))
				}
				id, err := parseIdentifier(args[0], opts...)
				if err != nil {
					return decodeFailed(logger, span, args[0], err)
				}
				hexs, bits, raw = id.Hex(), key.BitString(id), id.Bytes()
			}
			logger.Debug("decoded", zap.String("input", args[0]), zap.Int("bytes", len(raw)))

			return describe(cmd.OutOrStdout(), hexs, bits, raw)
		},
	}
	cmd.Flags().BoolVar(&fixed, "fixed", false, "decode into a 160-bit node id")
	cmd.Flags().IntVar(&maxBytes, "max-bytes", 0, "reject values whose encoding needs more bytes (0 for no limit)")
	return cmd
}

func newMatchCmd(logger *zap.Logger) *cobra.Command {
	return &cobra.Command{
		Use:   "match <prefix> <subject>",
		Short: "Report whether the bits of prefix lead the bits of subject",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			_, span := util.StartSpan(cmd.Context(), "match")
			defer span.End()

			prefix, err := parseIdentifier(args[0])
			if err != nil {
				logger.Error("invalid prefix", zap.String("input", args[0]), zap.Error(err))
				return err
			}
			subject, err := parseIdentifier(args[1])
			if err != nil {
				logger.Error("invalid subject", zap.String("input", args[1]), zap.Error(err))
				return err
			}

			match := prefix.IsMatch(subject)
			span.SetAttributes(attribute.Bool("match", match))
			fmt.Fprintf(cmd.OutOrStdout(), "%t (common prefix %d bits)\n", match, prefix.CommonPrefixLength(subject))
			return nil
		},
	}
}

func newHashCmd(logger *zap.Logger) *cobra.Command {
	return &cobra.Command{
		Use:   "hash <preimage>",
		Short: "Derive a 160-bit node id from the SHA1 digest of a string",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			_, span := util.StartSpan(cmd.Context(), "hash")
			defer span.End()

			nid := sha1key160.StringNodeID(args[0])
			logger.Debug("hashed", zap.String("preimage", args[0]), zap.Stringer("id", nid))
			fmt.Fprintln(cmd.OutOrStdout(), nid.Hex())
			return nil
		},
	}
}

func newRandomCmd(logger *zap.Logger) *cobra.Command {
	var (
		prefix string
		size   int
	)

	cmd := &cobra.Command{
		Use:   "random",
		Short: "Generate a random identifier, optionally starting with a bit pattern",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, span := util.StartSpan(cmd.Context(), "random", trace.WithAttributes(
				attribute.String("prefix", prefix),
				attribute.Int("size", size),
			))
			defer span.End()

			if size <= 0 {
				return fmt.Errorf("size must be positive, got %d", size)
			}
			if len(prefix) > 64 || len(prefix) > 8*size {
				return fmt.Errorf("prefix of %d bits does not fit", len(prefix))
			}
			if strings.Trim(prefix, "01") != "" {
				return fmt.Errorf("prefix %q is not a bit pattern", prefix)
			}

			id := keyutil.RandomWithPrefix(prefix, size)
			logger.Debug("generated", zap.Stringer("id", id))
			return describe(cmd.OutOrStdout(), id.Hex(), key.BitString(id), id.Bytes())
		},
	}
	cmd.Flags().StringVar(&prefix, "prefix", "", "leading bits of the identifier")
	cmd.Flags().IntVar(&size, "size", key.NodeIDSize, "size of the identifier in bytes")
	return cmd
}

func newPeerCmd(logger *zap.Logger) *cobra.Command {
	return &cobra.Command{
		Use:   "peer <peer-id>",
		Short: "Place a libp2p peer id in the 160-bit keyspace",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			_, span := util.StartSpan(cmd.Context(), "peer")
			defer span.End()

			pid, err := peer.Decode(args[0])
			if err != nil {
				span.RecordError(err)
				logger.Error("invalid peer id", zap.String("input", args[0]), zap.Error(err))
				return err
			}
			nid := libp2p.NewPeerID(pid).Key()
			fmt.Fprintln(cmd.OutOrStdout(), nid.Hex())
			return nil
		},
	}
}

func decodeFailed(logger *zap.Logger, span trace.Span, input string, err error) error {
	span.RecordError(err)
	logger.Error("decode failed", zap.String("input", input), zap.Error(err))
	return err
}

func describe(w io.Writer, hexs, bits string, raw []byte) error {
	mb, err := multibase.Encode(multibase.Base32, raw)
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "hex:       %s\n", hexs)
	fmt.Fprintf(w, "bits:      %s\n", bits)
	fmt.Fprintf(w, "multibase: %s\n", mb)
	return nil
}

func isHex(s string) bool {
	return strings.HasPrefix(s, "0x") || strings.HasPrefix(s, "0X")
}

func parseIdentifier(s string, opts ...numeric.Option) (key.Identifier, error) {
	if isHex(s) {
		return key.FromHex(s, opts...)
	}
	return key.FromDecimal(s, opts...)
}

func parseNodeID(s string) (key.NodeID, error) {
	if isHex(s) {
		return key.NodeIDFromHex(s)
	}
	return key.NodeIDFromDecimal(s)
}
