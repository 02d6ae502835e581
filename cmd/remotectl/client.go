package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/sufield/remote-access/internal/adapters/outbound/httpclient"
	"github.com/sufield/remote-access/pkg/envelope"
)

const defaultServiceURL = "http://localhost:3000"

// clientFlags are shared by every command that talks to the service.
type clientFlags struct {
	url     string
	timeout time.Duration
}

func (f *clientFlags) register(fs *flag.FlagSet) {
	def := os.Getenv("REMOTE_ACCESS_URL")
	if def == "" {
		def = defaultServiceURL
	}
	fs.StringVar(&f.url, "url", def, "Service base URL (env REMOTE_ACCESS_URL)")
	fs.DurationVar(&f.timeout, "timeout", 10*time.Second, "Request timeout")
}

func (f *clientFlags) dial(ctx context.Context) (*httpclient.Client, context.Context, context.CancelFunc, error) {
	client, err := httpclient.New(f.url)
	if err != nil {
		return nil, nil, nil, err
	}
	ctx, cancel := context.WithTimeout(ctx, f.timeout)
	return client, ctx, cancel, nil
}

func welcomeCommand(ctx context.Context, args []string, out io.Writer) error {
	fs := newFlagSet("welcome", out)
	var cf clientFlags
	cf.register(fs)
	if err := fs.Parse(args); err != nil {
		return err
	}

	client, ctx, cancel, err := cf.dial(ctx)
	if err != nil {
		return err
	}
	defer cancel()
	defer client.Close()

	msg, err := client.Welcome(ctx)
	if err != nil {
		return fmt.Errorf("welcome request failed: %w", err)
	}
	fmt.Fprintln(out, msg)
	return nil
}

func healthCommand(ctx context.Context, args []string, out io.Writer) error {
	fs := newFlagSet("health", out)
	var cf clientFlags
	cf.register(fs)
	if err := fs.Parse(args); err != nil {
		return err
	}

	client, ctx, cancel, err := cf.dial(ctx)
	if err != nil {
		return err
	}
	defer cancel()
	defer client.Close()

	if err := client.Health(ctx); err != nil {
		return fmt.Errorf("health check failed: %w", err)
	}
	fmt.Fprintf(out, "%s is healthy\n", cf.url)
	return nil
}

func sendCommand(ctx context.Context, args []string, out io.Writer) error {
	fs := newFlagSet("send", out)
	var cf clientFlags
	cf.register(fs)
	id := fs.String("id", "", "Envelope id (random UUID when empty)")
	payload := fs.String("payload", "null", "Envelope payload as JSON")
	if err := fs.Parse(args); err != nil {
		return err
	}

	raw := json.RawMessage(*payload)
	if !json.Valid(raw) {
		return fmt.Errorf("--payload is not valid JSON: %s", *payload)
	}

	client, ctx, cancel, err := cf.dial(ctx)
	if err != nil {
		return err
	}
	defer cancel()
	defer client.Close()

	resp, err := client.Send(ctx, envelope.RequestData{ID: *id, Payload: raw})
	if err != nil {
		return fmt.Errorf("send failed: %w", err)
	}

	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	return enc.Encode(resp)
}
