package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/catalogo-api/pkg/config"
)

func writeFile(t *testing.T, dir, name, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644))
}

// chdir reemplaza a t.Chdir (disponible a partir de Go 1.24).
func chdir(t *testing.T, dir string) {
	t.Helper()
	prev, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() {
		if err := os.Chdir(prev); err != nil {
			t.Errorf("restaurando directorio de trabajo: %v", err)
		}
	})
}

func TestLoad_Defaults(t *testing.T) {
	chdir(t, t.TempDir()) // sin archivos de configuración

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, "development", cfg.App.Env)
	assert.Equal(t, "catalogo-api", cfg.App.Name)
	assert.Equal(t, 5000, cfg.HTTP.Port)
	assert.Equal(t, "catalogo", cfg.DB.DBName)
	assert.Equal(t, 60, cfg.JWT.AccessExpiration)
}

func TestLoad_ConDotEnvYConfigEnv_SeMezclan(t *testing.T) {
	// Cuando coexisten .env y config.env, el segundo archivo se mezcla sobre
	// el primero en lugar de reemplazarlo: los valores de .env sobreviven.
	dir := t.TempDir()
	writeFile(t, dir, ".env", "APP_NAME=desde-dotenv\nDB_HOST=db-dotenv\n")
	writeFile(t, dir, "config.env", "DB_NAME=desde-config\n")
	chdir(t, dir)

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, "desde-dotenv", cfg.App.Name, "los valores de .env no deben perderse al leer config.env")
	assert.Equal(t, "db-dotenv", cfg.DB.Host)
	assert.Equal(t, "desde-config", cfg.DB.DBName)
}

func TestDBConfig_ConnectionString(t *testing.T) {
	// DATABASE_URL tiene prioridad sobre los campos sueltos.
	c := config.DBConfig{DatabaseURL: "postgres://u:p@host:5432/db"}
	assert.Equal(t, "postgres://u:p@host:5432/db", c.ConnectionString())

	c = config.DBConfig{Host: "localhost", Port: 5432, User: "postgres", Password: "p@ss/w", DBName: "catalogo", SSLMode: "disable"}
	dsn := c.ConnectionString()
	assert.Contains(t, dsn, "postgres://")
	assert.Contains(t, dsn, "/catalogo")
	assert.Contains(t, dsn, "sslmode=disable")
	assert.NotContains(t, dsn, "p@ss/w", "la contraseña con caracteres especiales va URL-encoded")
}
