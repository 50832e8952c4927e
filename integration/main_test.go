//go:build integration
// +build integration

// Package integration exercises a running API end to end: health check,
// game creation, a handful of turns, snapshot fetch, and deletion. Run
// with a live server (mock provider is enough):
//
//	LLM_PROVIDER=mock go run ./cmd/api &
//	go test -tags integration ./integration/
package integration

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"testing"
	"time"

	"github.com/realmforge/adventure-engine/pkg/chat"
	"github.com/realmforge/adventure-engine/pkg/state"
)

var apiBaseURL string

func TestMain(m *testing.M) {
	apiBaseURL = os.Getenv("API_BASE_URL")
	if apiBaseURL == "" {
		apiBaseURL = "http://localhost:8080"
	}

	fmt.Printf("Running Adventure Engine Integration Tests\n")
	fmt.Printf("   API Base URL: %s\n", apiBaseURL)

	os.Exit(m.Run())
}

func httpClient() *http.Client {
	return &http.Client{Timeout: 90 * time.Second}
}

func TestHealth(t *testing.T) {
	resp, err := httpClient().Get(apiBaseURL + "/health")
	if err != nil {
		t.Fatalf("Health check failed: %v (is the API running?)", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("Expected 200 from /health, got %d", resp.StatusCode)
	}
}

func TestGameLifecycle(t *testing.T) {
	client := httpClient()

	// Create
	createBody := bytes.NewBufferString(`{"world_type": "fantasy"}`)
	resp, err := client.Post(apiBaseURL+"/v1/games", "application/json", createBody)
	if err != nil {
		t.Fatalf("Create request failed: %v", err)
	}
	body, _ := io.ReadAll(resp.Body)
	_ = resp.Body.Close()
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("Expected 201, got %d: %s", resp.StatusCode, body)
	}

	var gs state.GameState
	if err := json.Unmarshal(body, &gs); err != nil {
		t.Fatalf("Failed to parse created game: %v", err)
	}
	if gs.World.Name == "" || gs.Player.Health != 100 {
		t.Fatalf("Unexpected new game state: %+v", gs)
	}
	t.Logf("Created game %s in world %q", gs.ID, gs.World.Name)

	// Turns
	actions := []string{
		"look around carefully",
		"talk to the nearest person",
		"head out the door and down the road",
	}
	for _, action := range actions {
		turnBody, _ := json.Marshal(chat.TurnRequest{Action: action})
		resp, err := client.Post(
			fmt.Sprintf("%s/v1/games/%s/turn", apiBaseURL, gs.ID),
			"application/json",
			bytes.NewBuffer(turnBody),
		)
		if err != nil {
			t.Fatalf("Turn request failed: %v", err)
		}
		body, _ := io.ReadAll(resp.Body)
		_ = resp.Body.Close()
		if resp.StatusCode != http.StatusOK {
			t.Fatalf("Expected 200 for turn, got %d: %s", resp.StatusCode, body)
		}

		var turnResp chat.TurnResponse
		if err := json.Unmarshal(body, &turnResp); err != nil {
			t.Fatalf("Failed to parse turn response: %v", err)
		}
		if turnResp.Narrative == "" {
			t.Errorf("Empty narrative for action %q", action)
		}
	}

	// Snapshot reflects the turns
	resp, err = client.Get(fmt.Sprintf("%s/v1/games/%s", apiBaseURL, gs.ID))
	if err != nil {
		t.Fatalf("Get request failed: %v", err)
	}
	body, _ = io.ReadAll(resp.Body)
	_ = resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("Expected 200 for get, got %d: %s", resp.StatusCode, body)
	}

	var snapshot state.GameState
	if err := json.Unmarshal(body, &snapshot); err != nil {
		t.Fatalf("Failed to parse snapshot: %v", err)
	}
	if snapshot.TimeElapsed != len(actions) {
		t.Errorf("Expected time elapsed %d, got %d", len(actions), snapshot.TimeElapsed)
	}
	if len(snapshot.GameHistory) < 2*len(actions) {
		t.Errorf("Expected at least %d history entries, got %d", 2*len(actions), len(snapshot.GameHistory))
	}

	// Delete
	req, _ := http.NewRequest(http.MethodDelete, fmt.Sprintf("%s/v1/games/%s", apiBaseURL, gs.ID), nil)
	resp, err = client.Do(req)
	if err != nil {
		t.Fatalf("Delete request failed: %v", err)
	}
	_ = resp.Body.Close()
	if resp.StatusCode != http.StatusNoContent {
		t.Fatalf("Expected 204 for delete, got %d", resp.StatusCode)
	}

	resp, err = client.Get(fmt.Sprintf("%s/v1/games/%s", apiBaseURL, gs.ID))
	if err != nil {
		t.Fatalf("Get after delete failed: %v", err)
	}
	_ = resp.Body.Close()
	if resp.StatusCode != http.StatusNotFound {
		t.Errorf("Expected 404 after delete, got %d", resp.StatusCode)
	}
}

func TestTurnOnMissingGame(t *testing.T) {
	turnBody := bytes.NewBufferString(`{"action": "look"}`)
	resp, err := httpClient().Post(
		apiBaseURL+"/v1/games/00000000-0000-0000-0000-000000000001/turn",
		"application/json",
		turnBody,
	)
	if err != nil {
		t.Fatalf("Request failed: %v", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusNotFound {
		t.Errorf("Expected 404, got %d", resp.StatusCode)
	}
}
