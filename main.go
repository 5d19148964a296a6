package main

import (
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/urfave/cli/v2"

	"stonegate/contract"
	"stonegate/host"
	"stonegate/sdk"
)

// stonegate runs the guard-chain contract against a local bbolt ledger so
// roles, time-locks and lifecycle state can be exercised without a chain.
func main() {
	app := &cli.App{
		Name:  "stonegate",
		Usage: "run the stonegate contract on a local ledger",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "db",
				Value: "stonegate.db",
				Usage: "path of the local ledger file",
			},
			&cli.StringFlag{
				Name:  "sender",
				Value: "user:dev",
				Usage: "invocation sender address",
			},
			&cli.StringSliceFlag{
				Name:  "auth",
				Usage: "additional addresses that authorized the invocation",
			},
			&cli.Uint64Flag{
				Name:  "timestamp",
				Usage: "ledger timestamp override (0 = wall clock)",
			},
		},
		Commands: []*cli.Command{
			{
				Name:      "call",
				Usage:     "invoke a contract method with a JSON payload",
				ArgsUsage: "METHOD [PAYLOAD]",
				Action:    runCall,
			},
			{
				Name:   "methods",
				Usage:  "list the dispatchable contract methods",
				Action: runMethods,
			},
			{
				Name:  "serve",
				Usage: "expose contract invocation and prometheus metrics over http",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:  "listen",
						Value: "127.0.0.1:9090",
						Usage: "http listen address",
					},
				},
				Action: runServe,
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		host.Logger.Fatal().Err(err).Msg("command failed")
	}
}

func openRuntime(c *cli.Context) (*host.Runtime, func(), error) {
	store, err := host.NewBoltStore(c.String("db"))
	if err != nil {
		return nil, nil, err
	}
	rt := host.NewRuntime(store)
	return rt, func() { store.Close() }, nil
}

func auths(c *cli.Context, sender sdk.Address) []sdk.Address {
	out := []sdk.Address{sender}
	for _, a := range c.StringSlice("auth") {
		out = append(out, sdk.Address(a))
	}
	return out
}

func runCall(c *cli.Context) error {
	if c.NArg() < 1 {
		return cli.Exit("usage: stonegate call METHOD [PAYLOAD]", 2)
	}
	method := c.Args().Get(0)
	payload := c.Args().Get(1)
	if payload == "" {
		payload = "{}"
	}

	rt, closer, err := openRuntime(c)
	if err != nil {
		return err
	}
	defer closer()

	sender := sdk.Address(c.String("sender"))
	if err := rt.Begin(sender, auths(c, sender), c.Uint64("timestamp")); err != nil {
		return err
	}

	result, callErr := contract.Invoke(contract.NewCtx(rt), method, payload)
	rt.Finish(method, callErr)
	if callErr != nil {
		return cli.Exit(callErr.Error(), 1)
	}

	fmt.Fprintln(c.App.Writer, result)
	return nil
}

func runMethods(c *cli.Context) error {
	for _, m := range contract.Methods() {
		fmt.Fprintln(c.App.Writer, m)
	}
	return nil
}

// invokeRequest is the serve-mode wire format.
type invokeRequest struct {
	Method    string   `json:"method"`
	Payload   string   `json:"payload"`
	Sender    string   `json:"sender"`
	Auths     []string `json:"auths"`
	Timestamp uint64   `json:"timestamp"`
}

type invokeResponse struct {
	Result string `json:"result,omitempty"`
	Error  string `json:"error,omitempty"`
	Code   uint32 `json:"code,omitempty"`
}

func runServe(c *cli.Context) error {
	store, err := host.NewBoltStore(c.String("db"))
	if err != nil {
		return err
	}
	defer store.Close()

	registry := prometheus.NewRegistry()
	rt := host.NewRuntime(store).WithMetrics(host.NewMetrics(registry))

	// The chain executes one transaction at a time; the dev server
	// serializes invocations to match.
	var seq sync.Mutex

	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.HandlerFor(registry, promhttp.HandlerOpts{}))
	mux.HandleFunc("/invoke", func(w http.ResponseWriter, req *http.Request) {
		if req.Method != http.MethodPost {
			http.Error(w, "post only", http.StatusMethodNotAllowed)
			return
		}

		var in invokeRequest
		if err := json.NewDecoder(req.Body).Decode(&in); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		if in.Payload == "" {
			in.Payload = "{}"
		}

		sender := sdk.Address(in.Sender)
		signers := []sdk.Address{sender}
		for _, a := range in.Auths {
			signers = append(signers, sdk.Address(a))
		}

		seq.Lock()
		defer seq.Unlock()

		if err := rt.Begin(sender, signers, in.Timestamp); err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
		result, callErr := contract.Invoke(contract.NewCtx(rt), in.Method, in.Payload)
		rt.Finish(in.Method, callErr)

		out := invokeResponse{Result: result}
		if callErr != nil {
			out = invokeResponse{Error: callErr.Error()}
			if coded, ok := sdk.AsError(callErr); ok {
				out.Code = coded.Code
			}
			w.WriteHeader(http.StatusUnprocessableEntity)
		}
		json.NewEncoder(w).Encode(out)
	})

	srv := &http.Server{
		Addr:              c.String("listen"),
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
	}

	host.Logger.Info().Str("listen", srv.Addr).Msg("dev server up")
	return srv.ListenAndServe()
}
