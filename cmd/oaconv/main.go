package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/sirupsen/logrus"

	"github.com/vultisig/openassets/internal/logging"
	"github.com/vultisig/openassets/internal/network"
	"github.com/vultisig/openassets/internal/openassets"
	"github.com/vultisig/openassets/internal/openassets/address"
)

var (
	networkName = flag.String("network", "mainnet", "mainnet, testnet, regtest or signet")
	reverse     = flag.Bool("reverse", false, "convert asset addresses back to bitcoin addresses")
	kindName    = flag.String("kind", "p2pkh", "hash kind for -reverse: p2pkh or p2sh")
	verbose     = flag.Bool("v", false, "log rejected addresses")
	logFormat   = flag.String("log-format", "text", "text or json")
)

func main() {
	flag.Parse()

	logger := logging.NewLogger(logging.LogFormat(*logFormat))
	logger.SetOutput(os.Stderr)
	if !*verbose {
		logger.SetLevel(logrus.WarnLevel)
	}

	if flag.NArg() == 0 {
		logger.Fatal("at least one address is required")
	}

	net, err := network.Parse(*networkName)
	if err != nil {
		logger.Fatalf("invalid -network: %v", err)
	}
	kind, err := address.ParseKind(*kindName)
	if err != nil {
		logger.Fatalf("invalid -kind: %v", err)
	}

	converter, err := openassets.NewConverter(net, logger, nil)
	if err != nil {
		logger.Fatalf("failed to initialize converter: %v", err)
	}

	failed := false
	for _, arg := range flag.Args() {
		out, err := convert(converter, arg, kind)
		if err != nil {
			fmt.Fprintf(os.Stderr, "%s: %v\n", arg, err)
			failed = true
			continue
		}
		fmt.Println(out)
	}
	if failed {
		os.Exit(1)
	}
}

func convert(converter *openassets.Converter, arg string, kind address.Kind) (string, error) {
	if *reverse {
		conv, err := converter.ToBase(arg, kind)
		if err != nil {
			return "", err
		}
		return conv.Base.EncodeAddress(), nil
	}
	conv, err := converter.ToAsset(arg)
	if err != nil {
		return "", err
	}
	return conv.Asset.String(), nil
}
