// Command zkpauth is the reference client: it can register a new user or run
// the full Chaum-Pedersen login exchange against a zkpauth-server, as the
// register and login subcommands respectively.
package main

import (
	"context"
	"crypto/rand"
	"flag"
	"fmt"
	"math/big"
	"os"
	"time"

	"github.com/nsheremet/zkpauth/internal/passwordhash"
	"github.com/nsheremet/zkpauth/internal/rpcapi"
)

func main() {
	if err := run(os.Args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, "zkpauth:", err)
		os.Exit(1)
	}
}

func run(args []string) error {
	if len(args) < 1 {
		return fmt.Errorf("usage: zkpauth <register|login> [flags]")
	}

	switch args[0] {
	case "register":
		return runRegister(args[1:])
	case "login":
		return runLogin(args[1:])
	default:
		return fmt.Errorf("unknown subcommand %q (want register or login)", args[0])
	}
}

func commonFlags(fs *flag.FlagSet) (addr, name, password *string) {
	addr = fs.String("addr", "[::1]:50051", "zkpauth-server address")
	name = fs.String("name", "", "user name")
	password = fs.String("password", "", "password")
	return
}

func runRegister(args []string) error {
	fs := flag.NewFlagSet("register", flag.ExitOnError)
	addr, name, password := commonFlags(fs)
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *name == "" || *password == "" {
		return fmt.Errorf("register requires --name and --password")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	client, err := rpcapi.DialClient(*addr)
	if err != nil {
		return fmt.Errorf("connecting to %s: %w", *addr, err)
	}
	defer client.Close()

	params, err := client.GetAuthenticationParameters(ctx)
	if err != nil {
		return fmt.Errorf("fetching parameters: %w", err)
	}

	x, err := passwordhash.ToExponent(passwordhash.Fast, *password)
	if err != nil {
		return err
	}
	y1, y2 := exponentiate(params, x)

	if _, err := client.Register(ctx, &rpcapi.RegisterRequest{User: *name, Y1: y1.Bytes(), Y2: y2.Bytes()}); err != nil {
		return fmt.Errorf("register: %w", err)
	}

	fmt.Printf("registered %q\n", *name)
	return nil
}

func runLogin(args []string) error {
	fs := flag.NewFlagSet("login", flag.ExitOnError)
	addr, name, password := commonFlags(fs)
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *name == "" || *password == "" {
		return fmt.Errorf("login requires --name and --password")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	client, err := rpcapi.DialClient(*addr)
	if err != nil {
		return fmt.Errorf("connecting to %s: %w", *addr, err)
	}
	defer client.Close()

	params, err := client.GetAuthenticationParameters(ctx)
	if err != nil {
		return fmt.Errorf("fetching parameters: %w", err)
	}

	x, err := passwordhash.ToExponent(passwordhash.Fast, *password)
	if err != nil {
		return err
	}

	start := time.Now()

	q := bytesToBigInt(params.Q)
	k, err := randomExponent(q)
	if err != nil {
		return err
	}
	r1, r2 := exponentiate(params, k)

	challenge, err := client.CreateAuthenticationChallenge(ctx, &rpcapi.ChallengeRequest{User: *name, R1: r1.Bytes(), R2: r2.Bytes()})
	if err != nil {
		return fmt.Errorf("requesting challenge: %w", err)
	}

	c := bytesToBigInt(challenge.C)
	s := solve(x, k, c, q)

	answer, err := client.VerifyAuthentication(ctx, &rpcapi.AnswerRequest{AuthID: challenge.AuthID, S: s.Bytes()})
	if err != nil {
		return fmt.Errorf("verifying: %w", err)
	}

	fmt.Printf("session: %s\n", answer.SessionID)
	fmt.Printf("time to authenticate: %s\n", time.Since(start))
	return nil
}

// exponentiate, randomExponent, and solve implement the small slice of group
// arithmetic a client needs locally to build its commitments and response.
// The client has no *engine.Engine of its own; it only ever sees the
// parameters the server reports over the wire.
func bytesToBigInt(b []byte) *big.Int {
	return new(big.Int).SetBytes(b)
}

func exponentiate(params *rpcapi.ParametersResponse, x *big.Int) (y1, y2 *big.Int) {
	p := bytesToBigInt(params.P)
	g := bytesToBigInt(params.G)
	h := bytesToBigInt(params.H)
	return new(big.Int).Exp(g, x, p), new(big.Int).Exp(h, x, p)
}

func randomExponent(q *big.Int) (*big.Int, error) {
	for {
		k, err := rand.Int(rand.Reader, q)
		if err != nil {
			return nil, err
		}
		if k.Sign() > 0 {
			return k, nil
		}
	}
}

func solve(x, k, c, q *big.Int) *big.Int {
	s := new(big.Int).Mul(c, x)
	s.Sub(k, s)
	s.Mod(s, q)
	return s
}
