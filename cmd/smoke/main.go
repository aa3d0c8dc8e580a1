// Command smoke walks the public API end to end against a running server:
// register, create and complete a quest, log a power-up, fight a bad guy,
// complete a side quest, then read the dashboard back. It exits non-zero on
// the first unexpected response.
package main

import (
	"bytes"
	"flag"
	"fmt"
	"io"
	"log"
	"net/http"
	"time"

	"github.com/goccy/go-json"
)

var baseURL = flag.String("base-url", "http://localhost:8080/api", "API base URL")

type client struct {
	http  *http.Client
	base  string
	token string
}

func (c *client) do(method, path string, body interface{}, out interface{}) (int, error) {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return 0, err
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequest(method, c.base+path, reader)
	if err != nil {
		return 0, err
	}
	req.Header.Set("Content-Type", "application/json")
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return 0, err
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return resp.StatusCode, err
	}
	if out != nil {
		if err := json.Unmarshal(data, out); err != nil {
			return resp.StatusCode, fmt.Errorf("decode %s %s: %w (%s)", method, path, err, data)
		}
	}
	return resp.StatusCode, nil
}

func (c *client) expect(method, path string, body interface{}, want int, out interface{}) {
	status, err := c.do(method, path, body, out)
	if err != nil {
		log.Fatalf("%s %s: %v", method, path, err)
	}
	if status != want {
		log.Fatalf("%s %s: got status %d, want %d", method, path, status, want)
	}
	log.Printf("ok: %s %s -> %d", method, path, status)
}

func main() {
	flag.Parse()

	c := &client{
		http: &http.Client{Timeout: 10 * time.Second},
		base: *baseURL,
	}

	email := fmt.Sprintf("smoke+%d@example.com", time.Now().UnixNano())

	var registered struct {
		Token string `json:"token"`
		User  struct {
			ID      string `json:"id"`
			TotalXP int    `json:"total_xp"`
			Level   int    `json:"level"`
		} `json:"user"`
	}
	c.expect(http.MethodPost, "/auth/register", map[string]string{
		"email":    email,
		"username": "smoke",
		"password": "smoke-password",
	}, http.StatusOK, &registered)
	c.token = registered.Token

	var quest struct {
		ID       string `json:"id"`
		XPReward int    `json:"xp_reward"`
	}
	c.expect(http.MethodPost, "/quests", map[string]string{
		"title":      "Smoke-test quest",
		"quest_type": "Daily",
	}, http.StatusOK, &quest)
	if quest.XPReward != 10 {
		log.Fatalf("daily quest xp_reward = %d, want 10", quest.XPReward)
	}

	var completed struct {
		XPGained int `json:"xp_gained"`
	}
	c.expect(http.MethodPut, "/quests/"+quest.ID+"/complete", nil, http.StatusOK, &completed)
	if completed.XPGained != 10 {
		log.Fatalf("quest completion xp_gained = %d, want 10", completed.XPGained)
	}

	// Second completion must conflict.
	status, err := c.do(http.MethodPut, "/quests/"+quest.ID+"/complete", nil, nil)
	if err != nil {
		log.Fatalf("re-complete quest: %v", err)
	}
	if status != http.StatusBadRequest {
		log.Fatalf("re-complete quest: got status %d, want 400", status)
	}
	log.Printf("ok: repeated completion rejected")

	var powerUp struct {
		ID string `json:"id"`
	}
	c.expect(http.MethodPost, "/power-ups", map[string]string{
		"title": "Cold shower",
	}, http.StatusOK, &powerUp)
	c.expect(http.MethodPost, "/power-ups/"+powerUp.ID+"/log", nil, http.StatusOK, nil)

	var badGuy struct {
		ID string `json:"id"`
	}
	c.expect(http.MethodPost, "/bad-guys", map[string]interface{}{
		"title":  "Doomscrolling",
		"max_hp": 20,
	}, http.StatusOK, &badGuy)

	var defeat struct {
		Message string `json:"message"`
	}
	c.expect(http.MethodPost, "/bad-guys/"+badGuy.ID+"/defeat?damage=25", nil, http.StatusOK, &defeat)
	if defeat.Message != "Bad guy defeated! It has respawned." {
		log.Fatalf("overkill blow message = %q, want respawn notice", defeat.Message)
	}

	c.expect(http.MethodGet, "/side-quests/daily", nil, http.StatusOK, nil)
	c.expect(http.MethodPost, "/side-quests/complete", nil, http.StatusOK, nil)

	var dashboard struct {
		User struct {
			TotalXP       int `json:"total_xp"`
			Level         int `json:"level"`
			CurrentStreak int `json:"current_streak"`
		} `json:"user"`
		QuestsCompletedToday int `json:"quests_completed_today"`
	}
	c.expect(http.MethodGet, "/dashboard", nil, http.StatusOK, &dashboard)

	if dashboard.User.TotalXP < 30 {
		log.Fatalf("dashboard total_xp = %d, want at least 30", dashboard.User.TotalXP)
	}
	if dashboard.User.CurrentStreak != 1 {
		log.Fatalf("dashboard current_streak = %d, want 1", dashboard.User.CurrentStreak)
	}
	if dashboard.QuestsCompletedToday != 1 {
		log.Fatalf("dashboard quests_completed_today = %d, want 1", dashboard.QuestsCompletedToday)
	}

	log.Println("smoke test passed")
}
