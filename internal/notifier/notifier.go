// Package notifier posts reminders to the daywell tray app over its local
// webhook. The tray advertises itself through a "port|pid|secret" lockfile.
package notifier

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/mitchellh/go-ps"

	"github.com/julianstephens/daywell/internal/constants"
	"github.com/julianstephens/daywell/internal/logger"
)

var (
	userConfigDirFunc = os.UserConfigDir
	findProcessFunc   = ps.FindProcess
	webhookHost       = "127.0.0.1"
)

// ErrTrayNotRunning means no tray app is listening for reminders.
var ErrTrayNotRunning = errors.New("daywell-tray is not running")

type Notifier struct {
	client *http.Client
}

type WebhookPayload struct {
	Text       string `json:"text"`
	DurationMs uint32 `json:"duration_ms"`
}

func New() *Notifier {
	return &Notifier{
		client: &http.Client{Timeout: 5 * time.Second},
	}
}

// Notify shows text in the tray app for durationMs (default when <= 0).
func (n *Notifier) Notify(text string, durationMs int) error {
	if durationMs <= 0 {
		durationMs = constants.NotificationDurationMs
	}

	trayAppConfigPath, err := GetTrayAppConfigDir()
	if err != nil {
		return err
	}

	port, secret, err := findAndValidateTrayProcess(filepath.Join(trayAppConfigPath, constants.NotifierLockfileName))
	if err != nil {
		return err
	}

	payload := WebhookPayload{
		Text:       text,
		DurationMs: uint32(durationMs),
	}

	var lastErr error
	for attempt := 1; attempt <= constants.NotifyMaxRetries; attempt++ {
		if lastErr = n.send(port, secret, payload); lastErr == nil {
			return nil
		}
		logger.Debug("Notification attempt failed", "attempt", attempt, "error", lastErr)
		if attempt < constants.NotifyMaxRetries {
			time.Sleep(constants.NotifyRetryDelay)
		}
	}
	return lastErr
}

// GetTrayAppConfigDir returns the directory holding the tray lockfile. The
// tray may point elsewhere through lockfile_dir in its settings.json.
func GetTrayAppConfigDir() (string, error) {
	configDir, err := userConfigDirFunc()
	if err != nil {
		return "", fmt.Errorf("failed to get user config dir: %w", err)
	}

	trayConfigDir := filepath.Join(configDir, constants.TrayAppIdentifier)

	data, err := os.ReadFile(filepath.Join(trayConfigDir, "settings.json"))
	if err == nil {
		var store struct {
			Settings struct {
				LockfileDir *string `json:"lockfile_dir"`
			} `json:"settings"`
		}
		if err := json.Unmarshal(data, &store); err == nil {
			if store.Settings.LockfileDir != nil && *store.Settings.LockfileDir != "" {
				return *store.Settings.LockfileDir, nil
			}
		}
	}

	return trayConfigDir, nil
}

func findAndValidateTrayProcess(lockfilePath string) (string, string, error) {
	content, err := os.ReadFile(lockfilePath)
	if err != nil {
		return "", "", ErrTrayNotRunning
	}

	parts := strings.Split(strings.TrimSpace(string(content)), "|")
	if len(parts) != 3 {
		return "", "", errors.New("lockfile is malformed")
	}

	port := strings.TrimSpace(parts[0])
	portNum, err := strconv.Atoi(port)
	if err != nil {
		return "", "", errors.New("invalid port number in lockfile")
	}
	if portNum < 1 || portNum > 65535 {
		return "", "", fmt.Errorf("port number %d is outside valid range (1-65535)", portNum)
	}

	pid, err := strconv.Atoi(parts[1])
	if err != nil {
		return "", "", errors.New("invalid process ID in lockfile")
	}
	secret := parts[2]
	if strings.TrimSpace(secret) == "" {
		return "", "", errors.New("secret in lockfile is empty")
	}

	process, err := findProcessFunc(pid)
	if err != nil || process == nil {
		return "", "", ErrTrayNotRunning
	}
	if !strings.HasPrefix(process.Executable(), constants.TrayExecutablePrefix) {
		return "", "", fmt.Errorf("process with PID %d is not %s (is %s)", pid, constants.TrayExecutablePrefix, process.Executable())
	}

	return port, secret, nil
}

func (n *Notifier) send(port, secret string, payload WebhookPayload) error {
	jsonData, err := json.Marshal(payload)
	if err != nil {
		return err
	}

	req, err := http.NewRequest(http.MethodPost, fmt.Sprintf("http://%s:%s", webhookHost, port), bytes.NewBuffer(jsonData))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Daywell-Secret", secret)

	res, err := n.client.Do(req)
	if err != nil {
		return err
	}
	defer res.Body.Close()

	if res.StatusCode == http.StatusOK {
		return nil
	}

	body, _ := io.ReadAll(res.Body)
	return fmt.Errorf("notification failed with status %d: %s", res.StatusCode, string(body))
}
