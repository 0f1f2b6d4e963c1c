package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/joho/godotenv"

	"github.com/projetoapollo/LICITANDO/internal"
)

const (
	SimilarityTokens = "token"
	SimilarityChars  = "chars"

	AveragePolicyMean    = "mean"
	AveragePolicyTrimmed = "trimmed"
)

type Config struct {
	CatalogPath string
	OutputDir   string

	MinSimilarity  float64
	SimilarityFunc string

	AveragePolicy string
	TrimCutoff    float64

	CodeGroupCount int
	CodeGroupWidth int
}

func Load() (Config, error) {
	_ = godotenv.Load()

	cwd, err := os.Getwd()
	if err != nil {
		return Config{}, err
	}

	cfg := Config{
		CatalogPath: getEnv("CATALOG_PATH", filepath.Join(cwd, "data", "catalogo_precos.csv")),
		OutputDir:   getEnv("OUTPUT_DIR", filepath.Join(cwd, "out")),

		MinSimilarity:  getEnvFloat("MIN_SIMILARITY", 0.70),
		SimilarityFunc: getEnv("SIMILARITY_FUNC", SimilarityTokens),

		AveragePolicy: getEnv("PRICE_AVERAGE_POLICY", AveragePolicyMean),
		TrimCutoff:    getEnvFloat("PRICE_TRIM_CUTOFF", 0.85),

		CodeGroupCount: getEnvInt("CODE_GROUP_COUNT", 3),
		CodeGroupWidth: getEnvInt("CODE_GROUP_WIDTH", 3),
	}

	return cfg, nil
}

// Validate rejects out-of-range settings before any processing begins.
func (c Config) Validate() error {
	if c.MinSimilarity < 0.0 || c.MinSimilarity > 1.0 {
		return fmt.Errorf("%w: MIN_SIMILARITY=%g outside [0.0, 1.0]", internal.ErrInvalidConfiguration, c.MinSimilarity)
	}
	switch c.SimilarityFunc {
	case SimilarityTokens, SimilarityChars:
	default:
		return fmt.Errorf("%w: SIMILARITY_FUNC=%q (want %s|%s)", internal.ErrInvalidConfiguration, c.SimilarityFunc, SimilarityTokens, SimilarityChars)
	}
	switch c.AveragePolicy {
	case AveragePolicyMean, AveragePolicyTrimmed:
	default:
		return fmt.Errorf("%w: PRICE_AVERAGE_POLICY=%q (want %s|%s)", internal.ErrInvalidConfiguration, c.AveragePolicy, AveragePolicyMean, AveragePolicyTrimmed)
	}
	if c.TrimCutoff <= 0.0 || c.TrimCutoff > 1.0 {
		return fmt.Errorf("%w: PRICE_TRIM_CUTOFF=%g outside (0.0, 1.0]", internal.ErrInvalidConfiguration, c.TrimCutoff)
	}
	if c.CodeGroupCount < 1 || c.CodeGroupWidth < 1 {
		return fmt.Errorf("%w: code grouping %dx%d", internal.ErrInvalidConfiguration, c.CodeGroupCount, c.CodeGroupWidth)
	}
	return nil
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	value := getEnv(key, "")
	if value == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(value)
	if err != nil {
		return fallback
	}
	return parsed
}

func getEnvFloat(key string, fallback float64) float64 {
	value := strings.TrimSpace(getEnv(key, ""))
	if value == "" {
		return fallback
	}
	parsed, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return fallback
	}
	return parsed
}
