package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"math"
	"os"
	"strings"
	"time"

	"golang-stock-dashboard/internal/entity"

	"gopkg.in/yaml.v3"
	"gorm.io/datatypes"
)

type securityRecord struct {
	Symbol        string  `yaml:"symbol"`
	Name          string  `yaml:"name"`
	Price         float64 `yaml:"price"`
	Change        float64 `yaml:"change"`
	ChangePercent float64 `yaml:"change_percent"`
	Volume        string  `yaml:"volume"`
	MarketCap     string  `yaml:"market_cap"`
}

type indexRecord struct {
	Symbol        string  `yaml:"symbol"`
	Name          string  `yaml:"name"`
	Value         float64 `yaml:"value"`
	Change        float64 `yaml:"change"`
	ChangePercent float64 `yaml:"change_percent"`
}

type predictionRecord struct {
	Symbol         string   `yaml:"symbol"`
	Name           string   `yaml:"name"`
	CurrentPrice   float64  `yaml:"current_price"`
	TargetPrice    float64  `yaml:"target_price"`
	ExpectedChange float64  `yaml:"expected_change"`
	Direction      string   `yaml:"direction"`
	Confidence     int      `yaml:"confidence"`
	Timeframe      string   `yaml:"timeframe"`
	Analysis       string   `yaml:"analysis"`
	Factors        []string `yaml:"factors"`
}

type newsRecord struct {
	ID              uint          `yaml:"id"`
	Title           string        `yaml:"title"`
	Excerpt         string        `yaml:"excerpt"`
	Source          string        `yaml:"source"`
	Category        string        `yaml:"category"`
	PublishedOffset time.Duration `yaml:"published_offset"`
	URL             string        `yaml:"url"`
	ImageURL        string        `yaml:"image_url"`
	Tickers         []string      `yaml:"tickers"`
}

type dataSetFile struct {
	Securities  []securityRecord   `yaml:"securities"`
	Indices     []indexRecord      `yaml:"indices"`
	Predictions []predictionRecord `yaml:"predictions"`
	News        []newsRecord       `yaml:"news"`
}

// DataSet is an immutable in-memory copy of the dashboard collections.
// Every accessor returns a fresh copy, so callers may modify the result.
type DataSet struct {
	securities  []entity.Security
	indices     []entity.MarketIndex
	predictions []entity.Prediction
	news        []entity.NewsArticle
}

// LoadDataSet reads a YAML data set from path. News publication times are
// resolved relative to now.
func LoadDataSet(path string, now time.Time) (*DataSet, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read data set %s: %w", path, err)
	}
	return ParseDataSet(raw, now)
}

// ParseDataSet decodes a YAML data set.
func ParseDataSet(raw []byte, now time.Time) (*DataSet, error) {
	var file dataSetFile
	if err := yaml.Unmarshal(raw, &file); err != nil {
		return nil, fmt.Errorf("failed to decode data set: %w", err)
	}

	ds := &DataSet{}
	seen := make(map[string]bool, len(file.Securities))
	for i, r := range file.Securities {
		symbol := strings.ToUpper(strings.TrimSpace(r.Symbol))
		if symbol == "" {
			return nil, fmt.Errorf("security #%d has no symbol", i+1)
		}
		if seen[symbol] {
			return nil, fmt.Errorf("duplicate security %s", symbol)
		}
		seen[symbol] = true
		if !positive(r.Price) {
			return nil, fmt.Errorf("security %s has non-positive price %v", symbol, r.Price)
		}
		ds.securities = append(ds.securities, entity.Security{
			Symbol:        symbol,
			Name:          r.Name,
			Price:         r.Price,
			Change:        r.Change,
			ChangePercent: r.ChangePercent,
			Volume:        r.Volume,
			MarketCap:     r.MarketCap,
			Position:      i,
		})
	}

	seenIndex := make(map[string]bool, len(file.Indices))
	for i, r := range file.Indices {
		symbol := strings.ToUpper(strings.TrimSpace(r.Symbol))
		if symbol == "" {
			return nil, fmt.Errorf("index #%d has no symbol", i+1)
		}
		if seenIndex[symbol] {
			return nil, fmt.Errorf("duplicate index %s", symbol)
		}
		seenIndex[symbol] = true
		if !positive(r.Value) {
			return nil, fmt.Errorf("index %s has non-positive value %v", symbol, r.Value)
		}
		ds.indices = append(ds.indices, entity.MarketIndex{
			Symbol:        symbol,
			Name:          r.Name,
			Value:         r.Value,
			Change:        r.Change,
			ChangePercent: r.ChangePercent,
			Position:      i,
		})
	}

	seenPrediction := make(map[string]bool, len(file.Predictions))
	for i, r := range file.Predictions {
		symbol := strings.ToUpper(strings.TrimSpace(r.Symbol))
		if symbol == "" {
			return nil, fmt.Errorf("prediction #%d has no symbol", i+1)
		}
		if seenPrediction[symbol] {
			return nil, fmt.Errorf("duplicate prediction %s", symbol)
		}
		seenPrediction[symbol] = true
		if !positive(r.TargetPrice) {
			return nil, fmt.Errorf("prediction %s has non-positive target price %v", symbol, r.TargetPrice)
		}
		if !positive(r.CurrentPrice) {
			return nil, fmt.Errorf("prediction %s has non-positive current price %v", symbol, r.CurrentPrice)
		}
		if r.Confidence < 0 || r.Confidence > 100 {
			return nil, fmt.Errorf("prediction %s has confidence %d outside 0-100", symbol, r.Confidence)
		}
		direction := entity.Direction(strings.ToLower(r.Direction))
		if !direction.Valid() {
			return nil, fmt.Errorf("prediction %s has unknown direction %q", r.Symbol, r.Direction)
		}
		p := entity.Prediction{
			Symbol:         symbol,
			Name:           r.Name,
			CurrentPrice:   r.CurrentPrice,
			TargetPrice:    r.TargetPrice,
			ExpectedChange: r.ExpectedChange,
			Direction:      direction,
			Confidence:     r.Confidence,
			Timeframe:      r.Timeframe,
			Analysis:       r.Analysis,
			Position:       i,
		}
		if len(r.Factors) > 0 {
			factors, err := json.Marshal(r.Factors)
			if err != nil {
				return nil, fmt.Errorf("failed to encode factors for %s: %w", r.Symbol, err)
			}
			p.Factors = datatypes.JSON(factors)
		}
		ds.predictions = append(ds.predictions, p)
	}

	seenNews := make(map[uint]bool, len(file.News))
	for i, r := range file.News {
		if r.ID == 0 {
			return nil, fmt.Errorf("news #%d has no id", i+1)
		}
		if seenNews[r.ID] {
			return nil, fmt.Errorf("duplicate news id %d", r.ID)
		}
		seenNews[r.ID] = true
		ds.news = append(ds.news, entity.NewsArticle{
			ID:          r.ID,
			Title:       r.Title,
			Excerpt:     r.Excerpt,
			Source:      r.Source,
			Category:    entity.ParseNewsCategory(r.Category),
			PublishedAt: now.Add(-r.PublishedOffset),
			URL:         r.URL,
			ImageURL:    r.ImageURL,
			Tickers:     r.Tickers,
		})
	}

	return ds, nil
}

func positive(v float64) bool {
	return v > 0 && !math.IsInf(v, 1)
}

// Securities returns a copy of the securities.
func (d *DataSet) Securities() []entity.Security {
	return append([]entity.Security(nil), d.securities...)
}

// Indices returns a copy of the market indices.
func (d *DataSet) Indices() []entity.MarketIndex {
	return append([]entity.MarketIndex(nil), d.indices...)
}

// Predictions returns a copy of the predictions.
func (d *DataSet) Predictions() []entity.Prediction {
	out := make([]entity.Prediction, len(d.predictions))
	for i, p := range d.predictions {
		out[i] = p
		if p.Factors != nil {
			out[i].Factors = append(datatypes.JSON(nil), p.Factors...)
		}
	}
	return out
}

// News returns a copy of the news articles.
func (d *DataSet) News() []entity.NewsArticle {
	out := make([]entity.NewsArticle, len(d.news))
	for i, a := range d.news {
		out[i] = a
		if a.Tickers != nil {
			out[i].Tickers = append([]string(nil), a.Tickers...)
		}
	}
	return out
}

// Repositories exposes the data set through the repository interfaces.
func (d *DataSet) Repositories() Repositories {
	return Repositories{
		Securities:  &fixtureSecurityRepository{ds: d},
		Predictions: &fixturePredictionRepository{ds: d},
		News:        &fixtureNewsRepository{ds: d},
		Indices:     &fixtureIndexRepository{ds: d},
	}
}

type fixtureSecurityRepository struct{ ds *DataSet }

func (r *fixtureSecurityRepository) List(_ context.Context) ([]entity.Security, error) {
	return r.ds.Securities(), nil
}

func (r *fixtureSecurityRepository) GetBySymbol(_ context.Context, symbol string) (*entity.Security, error) {
	for _, s := range r.ds.securities {
		if strings.EqualFold(s.Symbol, symbol) {
			found := s
			return &found, nil
		}
	}
	return nil, fmt.Errorf("security %s: %w", symbol, ErrNotFound)
}

type fixturePredictionRepository struct{ ds *DataSet }

func (r *fixturePredictionRepository) List(_ context.Context) ([]entity.Prediction, error) {
	return r.ds.Predictions(), nil
}

func (r *fixturePredictionRepository) GetBySymbol(_ context.Context, symbol string) (*entity.Prediction, error) {
	for _, p := range r.ds.Predictions() {
		if p.Matches(symbol) {
			found := p
			return &found, nil
		}
	}
	return nil, fmt.Errorf("prediction %s: %w", symbol, ErrNotFound)
}

type fixtureNewsRepository struct{ ds *DataSet }

func (r *fixtureNewsRepository) List(_ context.Context) ([]entity.NewsArticle, error) {
	return r.ds.News(), nil
}

func (r *fixtureNewsRepository) GetByID(_ context.Context, id uint) (*entity.NewsArticle, error) {
	for _, a := range r.ds.News() {
		if a.ID == id {
			found := a
			return &found, nil
		}
	}
	return nil, fmt.Errorf("news %d: %w", id, ErrNotFound)
}

type fixtureIndexRepository struct{ ds *DataSet }

func (r *fixtureIndexRepository) List(_ context.Context) ([]entity.MarketIndex, error) {
	return r.ds.Indices(), nil
}
