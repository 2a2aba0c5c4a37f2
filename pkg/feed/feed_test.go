package feed

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	"github.com/Letshaveago1/burryport-uk/pkg/tides"
)

const feedBody = `<?xml version="1.0" encoding="UTF-8"?>
<rss version="2.0">
<channel>
<title>Burry Port Tide Times</title>
<link>https://www.tidetimes.org.uk/burry-port-tide-times</link>
<description>Tide predictions</description>
<item>
<title>Burry Port Tide Times 01/06/2024</title>
<pubDate>Sat, 01 Jun 2024 00:00:00 GMT</pubDate>
<description><![CDATA[Tide times for <a href="https://www.tidetimes.org.uk/">Burry Port</a><br/>06:15 - High Tide (7.42m)<br/>14:03 - Low Tide &#x28;1.10m&#x29;<br/>Sunrise: 05:01<br/>]]></description>
</item>
<item>
<title>Entry with no date</title>
<description><![CDATA[03:00 - High Tide (6.00m)]]></description>
</item>
</channel>
</rss>`

func TestFetch(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/rss+xml")
		w.Write([]byte(feedBody))
	}))
	defer srv.Close()

	zone, err := time.LoadLocation(tides.ZoneName)
	if err != nil {
		t.Fatalf("loading zone: %v", err)
	}

	got, err := NewClient(srv.URL, zone).Fetch(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %+v", err)
	}

	want := []tides.Event{{
		Time:   time.Date(2024, time.June, 1, 6, 15, 0, 0, zone),
		Type:   tides.High,
		Height: 7.42,
	}, {
		Time:   time.Date(2024, time.June, 1, 14, 3, 0, 0, zone),
		Type:   tides.Low,
		Height: 1.1,
	}}
	if diff := cmp.Diff(got, want); diff != "" {
		t.Errorf("incorrect events (-got,+want): %s", diff)
	}

	// a June local time must serialize with the BST offset
	if want := "2024-06-01T06:15:00+01:00"; got[0].Timestamp() != want {
		t.Errorf("got  %q", got[0].Timestamp())
		t.Errorf("want %q", want)
	}
}

func TestFetchEmptyFeed(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`<?xml version="1.0"?><rss version="2.0"><channel><title>empty</title></channel></rss>`))
	}))
	defer srv.Close()

	got, err := NewClient(srv.URL, time.UTC).Fetch(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %+v", err)
	}
	if len(got) != 0 {
		t.Errorf("got %d events from an empty feed, want 0", len(got))
	}
}

func TestFetchUnreachable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	if _, err := NewClient(srv.URL, time.UTC).Fetch(context.Background()); err == nil {
		t.Error("expected error from a failing source")
	}
}
