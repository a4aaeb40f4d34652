package system

import (
	"fmt"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/sirupsen/logrus"
)

// Same endpoint NetworkManager uses for its own connectivity checks.
const defaultProbeURL = "http://connectivity-check.ubuntu.com"

const probeTimeout = 5 * time.Second

// ConnectivityProbe performs a plain HTTP request to decide whether
// the box actually reaches the internet, as opposed to merely being
// associated with an access point.
type ConnectivityProbe struct {
	client *resty.Client
	url    string
}

func NewConnectivityProbe() ConnectivityProbe {
	client := resty.New()
	client.SetTimeout(probeTimeout)
	return ConnectivityProbe{client: client, url: defaultProbeURL}
}

// Check returns nil when the probe endpoint answered with a
// non-server-error status. A captive portal answering for the
// endpoint still counts as reachable here.
func (t ConnectivityProbe) Check() error {
	resp, err := t.client.R().Get(t.url)
	if err != nil {
		return fmt.Errorf("connectivity probe failed: %v", err)
	}

	logrus.Debugf("connectivity probe %s returned %d", t.url, resp.StatusCode())

	if resp.StatusCode() >= 500 {
		return fmt.Errorf("connectivity probe returned status %d", resp.StatusCode())
	}

	return nil
}
