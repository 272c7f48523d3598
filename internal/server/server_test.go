package server

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"
	"tileworld-server/internal/domain"
	"tileworld-server/internal/engine"
	"tileworld-server/internal/network"
	"tileworld-server/internal/systems"
	"tileworld-server/internal/world"
	"tileworld-server/pkg/api"
	"tileworld-server/pkg/logger"
	"time"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	logger.Init()
	os.Exit(m.Run())
}

func newTestServer(t *testing.T) (*Server, *httptest.Server) {
	t.Helper()
	g, err := world.NewTileGrid(100, 100)
	require.NoError(t, err)
	w := world.New("srv", g, domain.EvilCrimson)
	w.SetView(domain.View{
		Camera: domain.CameraAtTile(50, 50, w.TileSize()),
		Screen: domain.Screen{Width: 480, Height: 320},
	})

	cfg := engine.NewConfig()
	cfg.Spawn = systems.SpawnConfig{Interval: 1, MaxEnemies: 0}
	inst := engine.NewInstance(w, network.NewBroadcaster(), cfg)

	s := New(inst, 0)
	ts := httptest.NewServer(s.Router())
	t.Cleanup(ts.Close)
	return s, ts
}

func get(t *testing.T, url string) *http.Response {
	t.Helper()
	resp, err := http.Get(url)
	require.NoError(t, err)
	t.Cleanup(func() { resp.Body.Close() })
	return resp
}

func TestHealth(t *testing.T) {
	_, ts := newTestServer(t)

	resp := get(t, ts.URL+"/health")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "*", resp.Header.Get("Access-Control-Allow-Origin"))
}

func TestVersion(t *testing.T) {
	_, ts := newTestServer(t)

	resp := get(t, ts.URL+"/version")
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var info map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&info))
	assert.EqualValues(t, world.CurrentVersion, info["worldFormat"])
}

func TestDebugWorld(t *testing.T) {
	_, ts := newTestServer(t)

	resp := get(t, ts.URL+"/debug/world")
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var summary api.WorldSummary
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&summary))
	assert.Equal(t, "srv", summary.Name)
	assert.Equal(t, "crimson", summary.Evil)
	assert.Equal(t, "forest", summary.Biome)
	assert.Equal(t, 100, summary.Width)
}

func TestDebugHub(t *testing.T) {
	_, ts := newTestServer(t)

	resp := get(t, ts.URL+"/debug/hub")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, resp.Header.Get("Content-Type"), "application/json")
}

// readUntil читает сообщения, пока не встретит подходящее
func readUntil(t *testing.T, conn *websocket.Conn, match func(api.ServerResponse) bool) api.ServerResponse {
	t.Helper()
	require.NoError(t, conn.SetReadDeadline(time.Now().Add(3*time.Second)))
	for {
		var msg api.ServerResponse
		require.NoError(t, conn.ReadJSON(&msg))
		if match(msg) {
			return msg
		}
	}
}

func TestWebSocket_ObserverSession(t *testing.T) {
	s, ts := newTestServer(t)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go func() { _ = s.Instance.Run(ctx) }()

	wsURL := "ws" + strings.TrimPrefix(ts.URL, "http") + "/ws"
	conn, _, err := websocket.DefaultDialer.Dial(wsURL, nil)
	require.NoError(t, err)
	defer conn.Close()

	welcome := readUntil(t, conn, func(m api.ServerResponse) bool { return m.Type == api.MsgInit })
	assert.NotEmpty(t, welcome.SessionID)
	require.NotNil(t, welcome.World)
	assert.Equal(t, "srv", welcome.World.Name)

	require.NoError(t, conn.WriteJSON(api.ClientCommand{
		Action:  "CAMERA",
		Payload: json.RawMessage(`{"x":2400,"y":2880}`),
	}))
	frame := readUntil(t, conn, func(m api.ServerResponse) bool {
		return m.Type == api.MsgFrame && m.Render != nil && m.Render.MinY == 54
	})
	assert.Equal(t, 64, frame.Render.MaxY)

	require.NoError(t, conn.WriteJSON(api.ClientCommand{Action: "RESIZE", Payload: json.RawMessage(`{"width":0}`)}))
	errMsg := readUntil(t, conn, func(m api.ServerResponse) bool { return m.Type == api.MsgError })
	assert.Contains(t, errMsg.Error, "invalid payload")
}
