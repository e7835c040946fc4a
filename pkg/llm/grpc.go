package llm

import (
	"context"
	"fmt"
	"sync"

	llmv1 "github.com/NoAme666/aiquant/proto"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
)

// GRPCClient implements Client by calling the model service over gRPC.
// grpc.NewClient dials lazily; the first RPC establishes the connection.
type GRPCClient struct {
	conn    *grpc.ClientConn
	client  llmv1.ModelServiceClient
	opts    Options
	closeMu sync.Mutex
	closed  bool
}

// NewGRPCClient creates a client for the model service at addr.
func NewGRPCClient(addr string, opts Options) (*GRPCClient, error) {
	conn, err := grpc.NewClient(addr, grpc.WithTransportCredentials(insecure.NewCredentials()))
	if err != nil {
		return nil, fmt.Errorf("failed to connect to model service at %s: %w", addr, err)
	}
	return &GRPCClient{
		conn:   conn,
		client: llmv1.NewModelServiceClient(conn),
		opts:   opts,
	}, nil
}

// Think implements Client.
func (c *GRPCClient) Think(ctx context.Context, prompt string, promptCtx map[string]any) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, c.opts.timeout())
	defer cancel()

	req := &llmv1.ThinkRequest{
		Prompt: prompt,
		Model:  c.opts.Model,
	}
	for k, v := range promptCtx {
		req.Context = append(req.Context, &llmv1.ContextEntry{
			Key:   k,
			Value: fmt.Sprintf("%v", v),
		})
	}

	resp, err := c.client.Think(ctx, req)
	if err != nil {
		return "", fmt.Errorf("think call failed: %w", err)
	}
	return resp.GetText(), nil
}

// Embed implements Client.
func (c *GRPCClient) Embed(ctx context.Context, text string) ([]float32, error) {
	ctx, cancel := context.WithTimeout(ctx, c.opts.timeout())
	defer cancel()

	resp, err := c.client.Embed(ctx, &llmv1.EmbedRequest{Text: text})
	if err != nil {
		return nil, fmt.Errorf("embed call failed: %w", err)
	}
	vec := resp.GetVector()
	if len(vec) != EmbeddingDim {
		return nil, fmt.Errorf("unexpected embedding dimension %d", len(vec))
	}
	return vec, nil
}

// Close releases the gRPC connection.
func (c *GRPCClient) Close() error {
	c.closeMu.Lock()
	defer c.closeMu.Unlock()
	if c.closed {
		return nil
	}
	c.closed = true
	return c.conn.Close()
}
