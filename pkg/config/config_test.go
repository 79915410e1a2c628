package config

import (
	"os"
	"testing"
	"time"
)

func TestLoad(t *testing.T) {
	// Set up test environment variables
	os.Setenv("botToken", "test-token")
	os.Setenv("PORT", "3001")
	os.Setenv("enviroment", "test")
	os.Setenv("dataDir", "/tmp/warden-test")
	defer func() {
		os.Unsetenv("botToken")
		os.Unsetenv("PORT")
		os.Unsetenv("enviroment")
		os.Unsetenv("dataDir")
	}()

	// Reset global config
	resetForTesting()

	config, err := Load()
	if err != nil {
		t.Fatalf("Load() returned error: %v", err)
	}

	if config.BotToken != "test-token" {
		t.Errorf("BotToken = %v, want %v", config.BotToken, "test-token")
	}

	if config.Port != "3001" {
		t.Errorf("Port = %v, want %v", config.Port, "3001")
	}

	if config.Environment != "test" {
		t.Errorf("Environment = %v, want %v", config.Environment, "test")
	}

	if config.DataDir != "/tmp/warden-test" {
		t.Errorf("DataDir = %v, want %v", config.DataDir, "/tmp/warden-test")
	}
}

func TestGetEnv(t *testing.T) {
	os.Setenv("TEST_VAR", "test-value")
	defer os.Unsetenv("TEST_VAR")

	if got := getEnv("TEST_VAR", "default"); got != "test-value" {
		t.Errorf("getEnv() = %v, want %v", got, "test-value")
	}

	if got := getEnv("NON_EXISTENT_VAR", "default"); got != "default" {
		t.Errorf("getEnv() = %v, want %v", got, "default")
	}
}

func TestGetEnvSeconds(t *testing.T) {
	os.Setenv("muteSweepSeconds", "5")
	defer os.Unsetenv("muteSweepSeconds")

	if got := getEnvSeconds("muteSweepSeconds", time.Minute); got != 5*time.Second {
		t.Errorf("getEnvSeconds() = %v, want %v", got, 5*time.Second)
	}

	os.Setenv("muteSweepSeconds", "no-un-numero")
	if got := getEnvSeconds("muteSweepSeconds", time.Minute); got != time.Minute {
		t.Errorf("getEnvSeconds() con valor inválido = %v, want %v", got, time.Minute)
	}

	os.Setenv("muteSweepSeconds", "-3")
	if got := getEnvSeconds("muteSweepSeconds", time.Minute); got != time.Minute {
		t.Errorf("getEnvSeconds() con valor negativo = %v, want %v", got, time.Minute)
	}
}

func TestIsProd(t *testing.T) {
	resetForTesting()
	os.Setenv("enviroment", "prod")
	config, _ := Load()

	if !config.IsProd() {
		t.Error("IsProd() should return true when environment is 'prod'")
	}

	resetForTesting()
	os.Setenv("enviroment", "dev")
	config, _ = Load()

	if config.IsProd() {
		t.Error("IsProd() should return false when environment is not 'prod'")
	}

	os.Unsetenv("enviroment")
}

func TestGet(t *testing.T) {
	resetForTesting()

	// Get should create a new config if none exists
	config := Get()
	if config == nil {
		t.Fatal("Get() returned nil")
	}

	// Get should return the same config on subsequent calls
	config2 := Get()
	if config != config2 {
		t.Error("Get() should return the same config on subsequent calls")
	}
}

func TestDefaultValues(t *testing.T) {
	// Clear all environment variables
	os.Unsetenv("botToken")
	os.Unsetenv("devGuildId")
	os.Unsetenv("dataDir")
	os.Unsetenv("muteRoleName")
	os.Unsetenv("muteSweepSeconds")
	os.Unsetenv("mongodbUrl")
	os.Unsetenv("dbName")
	os.Unsetenv("MQTT_Host")
	os.Unsetenv("MQTT_Port")
	os.Unsetenv("PORT")
	os.Unsetenv("enviroment")

	resetForTesting()
	config, _ := Load()

	if config.DataDir != "./data" {
		t.Errorf("DataDir default = %v, want %v", config.DataDir, "./data")
	}

	if config.MuteRoleName != "Muted" {
		t.Errorf("MuteRoleName default = %v, want %v", config.MuteRoleName, "Muted")
	}

	if config.MuteSweepInterval != 60*time.Second {
		t.Errorf("MuteSweepInterval default = %v, want %v", config.MuteSweepInterval, 60*time.Second)
	}

	if config.DBName != "WardenBot" {
		t.Errorf("DBName default = %v, want %v", config.DBName, "WardenBot")
	}

	if config.HasDatabase() {
		t.Error("HasDatabase() should be false without mongodbUrl")
	}

	if config.MQTTHost != "localhost" {
		t.Errorf("MQTTHost default = %v, want %v", config.MQTTHost, "localhost")
	}

	if config.Port != "3000" {
		t.Errorf("Port default = %v, want %v", config.Port, "3000")
	}

	if config.Environment != "dev" {
		t.Errorf("Environment default = %v, want %v", config.Environment, "dev")
	}
}
