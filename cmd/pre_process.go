package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/term"

	"github.com/tranvictor/onyxkit/config"
	"github.com/tranvictor/onyxkit/onyx"
	"github.com/tranvictor/onyxkit/transport"
	"github.com/tranvictor/onyxkit/ui"
	"github.com/tranvictor/onyxkit/util/addrbook"
)

// session is what a command needs to talk to the protocol.
type session struct {
	ctx    context.Context
	ui     ui.UI
	logger *zap.Logger
	client *onyx.Client
}

// secret is a private key, a mnemonic or a keystore file.
type secret struct {
	privateKey       string
	mnemonic         string
	keystore         string
	keystorePassword string
}

// classifySecret tells a mnemonic from a private key by its word count.
func classifySecret(s string) secret {
	s = strings.TrimSpace(s)
	if len(strings.Fields(s)) > 1 {
		return secret{mnemonic: strings.Join(strings.Fields(s), " ")}
	}
	return secret{privateKey: s}
}

func promptHidden(label string) (string, error) {
	if !term.IsTerminal(int(os.Stdin.Fd())) {
		return "", fmt.Errorf("%s is required and no terminal is available", strings.ToLower(label))
	}
	fmt.Fprintf(os.Stderr, "Enter %s: ", label)
	bytes, err := term.ReadPassword(int(os.Stdin.Fd()))
	fmt.Fprintln(os.Stderr)
	if err != nil {
		return "", fmt.Errorf("failed to read %s: %w", label, err)
	}
	return string(bytes), nil
}

// readSecret looks at the environment first and prompts without echo
// when nothing is set and a terminal is attached.
func readSecret(lookup func(string) (string, bool)) (secret, error) {
	env := func(name string) string {
		v, _ := lookup(name)
		return strings.TrimSpace(v)
	}
	key, mnemonic, keystore := env(config.PrivateKeyEnv), env(config.MnemonicEnv), env(config.KeystoreEnv)
	given := 0
	for _, v := range []string{key, mnemonic, keystore} {
		if v != "" {
			given++
		}
	}
	switch {
	case given > 1:
		return secret{}, fmt.Errorf("only one of %s, %s and %s may be set", config.PrivateKeyEnv, config.MnemonicEnv, config.KeystoreEnv)
	case key != "":
		return secret{privateKey: key}, nil
	case mnemonic != "":
		return classifySecret(mnemonic), nil
	case keystore != "":
		password, ok := lookup(config.KeystorePasswordEnv)
		if !ok {
			var err error
			if password, err = promptHidden("keystore password"); err != nil {
				return secret{}, err
			}
		}
		return secret{keystore: keystore, keystorePassword: password}, nil
	}

	input, err := promptHidden("private key or mnemonic")
	if err != nil {
		return secret{}, fmt.Errorf("%w; set %s, %s or %s", err, config.PrivateKeyEnv, config.MnemonicEnv, config.KeystoreEnv)
	}
	if strings.TrimSpace(input) == "" {
		return secret{}, errors.New("the signing key cannot be empty")
	}
	return classifySecret(input), nil
}

// newSession connects to config.Source(). Signing sessions load a key.
func newSession(cmd *cobra.Command, signing bool) (*session, error) {
	logger, err := newLogger()
	if err != nil {
		return nil, err
	}
	var sec secret
	if signing {
		if sec, err = readSecret(os.LookupEnv); err != nil {
			return nil, err
		}
	}
	client, err := onyx.New(config.Source(), onyx.Options{
		PrivateKey:       sec.privateKey,
		Mnemonic:         sec.mnemonic,
		DerivationPath:   config.DerivationPath,
		Keystore:         sec.keystore,
		KeystorePassword: sec.keystorePassword,
		Logger:           logger,
	})
	if err != nil {
		return nil, err
	}
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	return &session{
		ctx:    ctx,
		ui:     newUI(),
		logger: logger,
		client: client,
	}, nil
}

func callOptions() onyx.CallOptions {
	return onyx.CallOptions{
		Mantissa: config.Mantissa,
		GasLimit: config.GasLimit,
	}
}

// confirm shows what is about to be signed and asks to go on unless --yes
// was given.
func (s *session) confirm(title string, rows [][2]string) bool {
	s.ui.Section(title)
	profile, err := s.client.Network(s.ctx)
	if err == nil {
		rows = append([][2]string{{"Network", profile.GetName()}}, rows...)
	}
	if from, err := s.client.Transport().Account(s.ctx); err == nil {
		rows = append(rows, [2]string{"From", from.Hex()})
	}
	s.ui.KeyValue(rows)
	if config.Yes {
		return true
	}
	return s.ui.Confirm("Send it?", true)
}

// report prints the hash of h and, unless --no-wait, waits for the
// receipt and prints its events.
func (s *session) report(h transport.TxHandle) error {
	s.ui.Critical("Tx: %s", h.Hash().Hex())
	if config.NoWait {
		if asJSON() {
			return printJSON(map[string]string{"tx": h.Hash().Hex()})
		}
		return nil
	}
	stop := s.ui.Spinner(fmt.Sprintf("Waiting for %d confirmation(s)...", config.Confirmations))
	receipt, err := h.Wait(s.ctx, config.Confirmations)
	stop()
	if receipt != nil {
		if asJSON() {
			if jerr := printJSON(receipt); jerr != nil {
				return jerr
			}
		} else {
			s.ui.KeyValue([][2]string{
				{"Block", fmt.Sprintf("%d", receipt.BlockNumber)},
				{"Gas used", printer.Sprintf("%d", receipt.GasUsed)},
			})
			if len(receipt.Events) > 0 {
				profile, _ := s.client.Network(s.ctx)
				s.ui.Table([]string{"Event", "Contract", "Args"}, eventRows(receipt.Events, addrbook.NewProfile(profile)))
			}
		}
	}
	if err != nil {
		return err
	}
	s.ui.Success("Mined.")
	return nil
}

// send confirms then runs write and reports its result.
func (s *session) send(title string, rows [][2]string, write func() (transport.TxHandle, error), assets ...string) error {
	if !s.confirm(title, rows) {
		s.ui.Warn("Aborted.")
		return nil
	}
	h, err := write()
	if err != nil {
		return withSuggestion(err, assets...)
	}
	return s.report(h)
}

// holderSession opens a session for a read about args[i], or about the
// signing account when args has no such argument.
func holderSession(cmd *cobra.Command, args []string, i int) (*session, string, error) {
	if len(args) > i {
		s, err := newSession(cmd, false)
		return s, args[i], err
	}
	s, err := newSession(cmd, true)
	if err != nil {
		return nil, "", err
	}
	addr, err := s.client.Transport().Account(s.ctx)
	if err != nil {
		return nil, "", err
	}
	return s, addr.Hex(), nil
}
