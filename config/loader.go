package config

import (
	"fmt"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/afero"
	"github.com/spf13/viper"
)

// Resolver finds config and env files for a service on a filesystem.
type Resolver struct {
	Fs      afero.Fs
	HomeDir string
}

// ResolvedFiles contains the resolved config and env file paths.
type ResolvedFiles struct {
	ConfigFile string
	EnvFile    string
}

// ResolveFiles returns explicit paths if provided, otherwise searches for them.
func (r *Resolver) ResolveFiles(serviceName string, opts LoaderConfig) ResolvedFiles {
	resolved := ResolvedFiles{
		ConfigFile: opts.ConfigFile,
		EnvFile:    opts.EnvFile,
	}
	if resolved.ConfigFile == "" {
		resolved.ConfigFile = r.first(r.configSearchPaths(serviceName))
	}
	if resolved.EnvFile == "" {
		resolved.EnvFile = r.first(r.envSearchPaths(serviceName))
	}
	return resolved
}

func (r *Resolver) configSearchPaths(serviceName string) []string {
	paths := []string{
		"./config.yml",
		"./config/config.yml",
		filepath.Join(".", "cmd", serviceName, "config.yml"),
	}
	if r.HomeDir != "" {
		paths = append(paths, filepath.Join(r.HomeDir, "."+serviceName, "config.yml"))
	}
	return paths
}

func (r *Resolver) envSearchPaths(serviceName string) []string {
	paths := []string{
		"./.env." + serviceName,
		"./.env",
		filepath.Join(".", "cmd", serviceName, ".env"),
	}
	if r.HomeDir != "" {
		paths = append(paths, filepath.Join(r.HomeDir, "."+serviceName, ".env"))
	}
	return paths
}

func (r *Resolver) first(paths []string) string {
	for _, p := range paths {
		if ok, _ := afero.Exists(r.Fs, p); ok {
			return p
		}
	}
	return ""
}

// LoaderConfig holds dependencies and optional file overrides.
type LoaderConfig struct {
	Fs         afero.Fs
	HomeDir    string
	ConfigFile string // Direct config file path (optional)
	EnvFile    string // Direct env file path (optional)
}

// LoaderOption is a functional option for LoadConfig.
type LoaderOption func(*LoaderConfig)

// WithFs sets the filesystem used to find and read files.
func WithFs(fs afero.Fs) LoaderOption {
	return func(lc *LoaderConfig) { lc.Fs = fs }
}

// WithHomeDir overrides the home directory searched for ~/.<service>/ files.
func WithHomeDir(dir string) LoaderOption {
	return func(lc *LoaderConfig) { lc.HomeDir = dir }
}

// WithConfigFile sets an explicit config file path.
func WithConfigFile(path string) LoaderOption {
	return func(lc *LoaderConfig) { lc.ConfigFile = path }
}

// WithEnvFile sets an explicit .env file path.
func WithEnvFile(path string) LoaderOption {
	return func(lc *LoaderConfig) { lc.EnvFile = path }
}

// LoadConfig loads configuration for a service into cfg. Precedence, lowest
// first: config.yml, .env file, process environment.
func LoadConfig(serviceName string, cfg interface{}, opts ...LoaderOption) error {
	var lc LoaderConfig
	for _, opt := range opts {
		opt(&lc)
	}
	if lc.Fs == nil {
		lc.Fs = afero.NewOsFs()
	}
	if lc.HomeDir == "" {
		lc.HomeDir, _ = os.UserHomeDir()
	}

	resolver := &Resolver{Fs: lc.Fs, HomeDir: lc.HomeDir}
	files := resolver.ResolveFiles(serviceName, lc)

	return loadFromResolvedFiles(serviceName, cfg, files, lc.Fs)
}

func loadFromResolvedFiles(serviceName string, cfg interface{}, files ResolvedFiles, fs afero.Fs) error {
	v := viper.New()
	v.SetFs(fs)

	if files.ConfigFile != "" {
		v.SetConfigFile(files.ConfigFile)
		if err := v.ReadInConfig(); err != nil {
			return fmt.Errorf("config: read %s: %w", files.ConfigFile, err)
		}
	}

	if files.EnvFile != "" {
		if err := loadEnvFile(fs, files.EnvFile); err != nil {
			return fmt.Errorf("config: load %s: %w", files.EnvFile, err)
		}
	}

	autoBindEnvVars(v, configKeys(cfg))

	if err := v.Unmarshal(cfg); err != nil {
		return fmt.Errorf("config: unmarshal for service %s: %w", serviceName, err)
	}
	return nil
}

// loadEnvFile exports variables from a .env file without overriding
// variables that are already set, matching godotenv.Load.
func loadEnvFile(fs afero.Fs, path string) error {
	f, err := fs.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	vars, err := godotenv.Parse(f)
	if err != nil {
		return err
	}
	for k, val := range vars {
		if _, set := os.LookupEnv(k); set {
			continue
		}
		if err := os.Setenv(k, val); err != nil {
			return err
		}
	}
	return nil
}

// autoBindEnvVars binds environment variables to the nested keys they
// could stand for. Only keys in known are set: an unrelated variable such as
// DEBUG_PORT must not turn the debug key into a map.
func autoBindEnvVars(v *viper.Viper, known map[string]bool) {
	for _, env := range os.Environ() {
		key, value, ok := strings.Cut(env, "=")
		if !ok || key == "" {
			continue
		}
		for _, variant := range generateEnvKeyVariants(key) {
			if known[variant] {
				v.Set(variant, value)
			}
		}
	}
}

var timeType = reflect.TypeOf(time.Time{})

// configKeys returns the dotted leaf keys cfg declares through its
// mapstructure tags. Squashed structs contribute keys at their parent's level.
func configKeys(cfg interface{}) map[string]bool {
	keys := make(map[string]bool)
	collectKeys(reflect.TypeOf(cfg), "", keys)
	return keys
}

func collectKeys(t reflect.Type, prefix string, keys map[string]bool) {
	if t == nil {
		return
	}
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	if t.Kind() != reflect.Struct {
		return
	}
	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)
		if !f.IsExported() {
			continue
		}
		name, opts, _ := strings.Cut(f.Tag.Get("mapstructure"), ",")
		if name == "-" {
			continue
		}
		ft := f.Type
		for ft.Kind() == reflect.Pointer {
			ft = ft.Elem()
		}
		if strings.Contains(opts, "squash") {
			collectKeys(ft, prefix, keys)
			continue
		}
		if name == "" {
			name = strings.ToLower(f.Name)
		}
		key := prefix + name
		switch ft.Kind() {
		case reflect.Struct:
			if ft == timeType {
				keys[key] = true
				continue
			}
			collectKeys(ft, key+".", keys)
		case reflect.Map, reflect.Interface, reflect.Func, reflect.Chan:
			// not settable from a single string
		default:
			keys[key] = true
		}
	}
}

// generateEnvKeyVariants creates every dotted form of an env var name.
//
//	API_BASE_URL -> [api_base_url, api.base.url, api.base_url, api_base.url]
func generateEnvKeyVariants(envKey string) []string {
	lowerKey := strings.ToLower(envKey)
	parts := strings.Split(lowerKey, "_")
	if len(parts) <= 1 {
		return []string{lowerKey}
	}

	variants := []string{lowerKey, strings.Join(parts, ".")}
	for i := 1; i < len(parts); i++ {
		variants = append(variants,
			strings.Join(parts[:i], ".")+"."+strings.Join(parts[i:], "_"),
			strings.Join(parts[:i], "_")+"."+strings.Join(parts[i:], "."),
		)
	}
	return removeDuplicates(variants)
}

func removeDuplicates(items []string) []string {
	seen := make(map[string]bool, len(items))
	result := make([]string, 0, len(items))
	for _, item := range items {
		if !seen[item] {
			seen[item] = true
			result = append(result, item)
		}
	}
	return result
}
