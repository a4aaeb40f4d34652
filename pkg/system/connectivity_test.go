package system

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-resty/resty/v2"
)

func probeAgainst(url string) ConnectivityProbe {
	client := resty.New()
	client.SetTimeout(2 * time.Second)
	return ConnectivityProbe{client: client, url: url}
}

func TestConnectivityProbeCheck(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		wantErr bool
	}{
		{name: "no content", status: http.StatusNoContent},
		{name: "ok", status: http.StatusOK},
		{name: "captive portal redirect target", status: http.StatusFound},
		{name: "server error", status: http.StatusBadGateway, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
			}))
			defer srv.Close()

			err := probeAgainst(srv.URL).Check()
			if tt.wantErr && err == nil {
				t.Errorf("Check() expected error for status %d", tt.status)
			}
			if !tt.wantErr && err != nil {
				t.Errorf("Check() returned error for status %d: %v", tt.status, err)
			}
		})
	}
}

func TestConnectivityProbeCheckUnreachable(t *testing.T) {
	// Reserved TEST-NET-1 address, nothing listens there.
	if err := probeAgainst("http://192.0.2.1:9").Check(); err == nil {
		t.Error("Check() expected error for unreachable endpoint")
	}
}
