package redis

import (
	"context"
	"fmt"
	"testing"

	miniredis "github.com/alicebob/miniredis/v2"
)

func TestNewClient(t *testing.T) {
	tests := []struct {
		name    string
		url     func(s *miniredis.Miniredis) string
		wantErr bool
	}{
		{
			name:    "connects to a live server",
			url:     func(s *miniredis.Miniredis) string { return fmt.Sprintf("redis://%s", s.Addr()) },
			wantErr: false,
		},
		{
			name:    "rejects a malformed URL",
			url:     func(*miniredis.Miniredis) string { return "://bad-url" },
			wantErr: true,
		},
		{
			name: "fails when the server is unreachable",
			url: func(s *miniredis.Miniredis) string {
				addr := s.Addr()
				s.Close()
				return fmt.Sprintf("redis://%s", addr)
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := miniredis.RunT(t)
			ctx := context.Background()

			client, err := NewClient(ctx, tt.url(s))
			if tt.wantErr {
				if err == nil {
					t.Fatalf("expected error, got client")
				}
				return
			}
			if err != nil {
				t.Fatalf("NewClient: %v", err)
			}
			defer client.Close()

			if err := client.Ping(ctx).Err(); err != nil {
				t.Fatalf("ping: %v", err)
			}
		})
	}
}
