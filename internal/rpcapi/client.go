package rpcapi

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
)

// Client is a thin typed wrapper over a *grpc.ClientConn dialed with the
// json codec negotiated: one method per RPC operation, each a single
// Invoke call.
type Client struct {
	conn *grpc.ClientConn
}

// DialClient connects to addr and returns a Client. The connection is
// unencrypted (insecure.NewCredentials()).
func DialClient(addr string) (*Client, error) {
	conn, err := grpc.Dial(addr,
		grpc.WithTransportCredentials(insecure.NewCredentials()),
		grpc.WithDefaultCallOptions(grpc.CallContentSubtype(codecName)),
	)
	if err != nil {
		return nil, err
	}
	return &Client{conn: conn}, nil
}

// Close tears down the underlying connection.
func (c *Client) Close() error {
	return c.conn.Close()
}

func (c *Client) GetAuthenticationParameters(ctx context.Context) (*ParametersResponse, error) {
	out := new(ParametersResponse)
	if err := c.conn.Invoke(ctx, fullMethod("GetAuthenticationParameters"), &Empty{}, out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) Register(ctx context.Context, req *RegisterRequest) (*RegisterResponse, error) {
	out := new(RegisterResponse)
	if err := c.conn.Invoke(ctx, fullMethod("Register"), req, out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) CreateAuthenticationChallenge(ctx context.Context, req *ChallengeRequest) (*ChallengeResponse, error) {
	out := new(ChallengeResponse)
	if err := c.conn.Invoke(ctx, fullMethod("CreateAuthenticationChallenge"), req, out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) VerifyAuthentication(ctx context.Context, req *AnswerRequest) (*AnswerResponse, error) {
	out := new(AnswerResponse)
	if err := c.conn.Invoke(ctx, fullMethod("VerifyAuthentication"), req, out); err != nil {
		return nil, err
	}
	return out, nil
}
