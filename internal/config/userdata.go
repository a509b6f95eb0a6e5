package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"time"
)

// UserData holds user-specific settings that are stored locally
type UserData struct {
	LastDirectory string    `json:"last_directory"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// LoadUserData loads user data from the user.data file in the config directory
func LoadUserData() (*UserData, error) {
	userDataPath, err := getUserDataPath()
	if err != nil {
		return createDefaultUserData(), nil
	}

	// Check if file exists
	if _, err := os.Stat(userDataPath); os.IsNotExist(err) {
		// File doesn't exist, return default
		return createDefaultUserData(), nil
	}

	// Read the file
	data, err := os.ReadFile(userDataPath)
	if err != nil {
		return createDefaultUserData(), nil
	}

	// Parse JSON
	var userData UserData
	if err := json.Unmarshal(data, &userData); err != nil {
		// Invalid JSON, return default
		return createDefaultUserData(), nil
	}

	return &userData, nil
}

// SaveUserData saves user data to the user.data file in the config directory
func (ud *UserData) SaveUserData() error {
	userDataPath, err := getUserDataPath()
	if err != nil {
		return err
	}

	// Update timestamp
	ud.UpdatedAt = time.Now()
	if ud.CreatedAt.IsZero() {
		ud.CreatedAt = ud.UpdatedAt
	}

	// Convert to JSON
	data, err := json.MarshalIndent(ud, "", "  ")
	if err != nil {
		return err
	}

	// Write to file
	return os.WriteFile(userDataPath, data, 0644)
}

// SetLastDirectory records the most recently visited directory and saves to file
func (ud *UserData) SetLastDirectory(dir string) error {
	ud.LastDirectory = dir
	return ud.SaveUserData()
}

// createDefaultUserData creates a new UserData with default values
func createDefaultUserData() *UserData {
	now := time.Now()
	return &UserData{
		LastDirectory: "",
		CreatedAt:     now,
		UpdatedAt:     now,
	}
}

// getUserDataPath returns the path to the user.data file
func getUserDataPath() (string, error) {
	// Get user home directory
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}

	// Use the same directory as config file
	configDir := filepath.Join(homeDir, ".fsinspect")

	// Create directory if it doesn't exist
	if err := os.MkdirAll(configDir, 0700); err != nil {
		return "", err
	}

	return filepath.Join(configDir, "user.data"), nil
}
