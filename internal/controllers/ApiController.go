package controllers

import (
	"archive/zip"
	"bytes"
	"errors"
	"io"
	"net/http"
	"path/filepath"
	"strings"
	"time"

	json "github.com/goccy/go-json"
	"github.com/google/uuid"
	"github.com/spf13/cast"

	"cad/internal/analytics"
	"cad/internal/models"
	"cad/internal/parser"
	"cad/internal/providers"
	"cad/internal/services"
	"cad/internal/structures"
)

var defaultExtensions = []string{".txt", ".zip"}

type ApiController struct {
	logger  providers.Logger
	service services.ChatServiceInterface
	parser  *parser.Parser
	engine  *analytics.Engine
	cache   providers.CacheProviderInterface
	metrics providers.MetricsProviderInterface
	conf    *structures.Config
}

func NewApiController(logger providers.Logger, service services.ChatServiceInterface, chatParser *parser.Parser, engine *analytics.Engine, cache providers.CacheProviderInterface, metrics providers.MetricsProviderInterface, conf *structures.Config) *ApiController {
	return &ApiController{
		logger:  logger,
		service: service,
		parser:  chatParser,
		engine:  engine,
		cache:   cache,
		metrics: metrics,
		conf:    conf,
	}
}

func getChat(r *http.Request, service services.ChatServiceInterface) (*models.Chat, error) {
	id, err := uuid.Parse(r.URL.Query().Get("id"))
	if err != nil {
		return nil, errors.New("invalid chat id")
	}
	chat, ok := service.GetChat(id)
	if !ok {
		return nil, errors.New("chat not found")
	}
	return chat, nil
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	gson, err := json.Marshal(payload)
	if err != nil {
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write(gson)
}

func (ac *ApiController) serveFromCacheOrCompute(w http.ResponseWriter, cacheKey string, compute func() (any, error)) {
	if data, ok := ac.cache.Get(cacheKey); ok {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write(data)
		return
	}

	result, err := compute()
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	gson, err := json.Marshal(result)
	if err != nil {
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	ac.cache.Set(cacheKey, gson)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(gson)
}

// Upload accepts a multipart transcript file, parses it and stores the
// resulting chat. Zip archives are unpacked to their first .txt entry.
func (ac *ApiController) Upload(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, ac.conf.Upload.MaxFileSize)

	if err := r.ParseMultipartForm(ac.conf.Upload.MaxFileSize); err != nil {
		http.Error(w, "Bad Request", http.StatusBadRequest)
		return
	}
	file, header, err := r.FormFile("file")
	if err != nil {
		http.Error(w, "missing file field", http.StatusBadRequest)
		return
	}
	defer file.Close()

	ext := strings.ToLower(filepath.Ext(header.Filename))
	if !ac.extensionAllowed(ext) {
		http.Error(w, "only .txt and .zip files are supported", http.StatusBadRequest)
		return
	}

	content, err := io.ReadAll(file)
	if err != nil {
		http.Error(w, "Bad Request", http.StatusBadRequest)
		return
	}
	fileSize := len(content)

	filename := header.Filename
	if ext == ".zip" {
		content, filename, err = extractZip(content)
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
	}

	start := time.Now()
	transcript := ac.parser.Parse(content, filename)
	ac.metrics.ObserveParseDuration(time.Since(start))

	chat := ac.service.AddChat(transcript, header.Filename, fileSize)
	ac.logger.Infof(providers.TypeParse, "Parsed %s: %d messages, %d participants",
		header.Filename, len(chat.Messages), len(chat.Participants))

	writeJSON(w, http.StatusCreated, map[string]any{
		"chat_id": chat.ID.String(),
		"message": "Chat uploaded and processed successfully",
		"stats": map[string]any{
			"participants": len(chat.Participants),
			"messages":     len(chat.Messages),
			"file_size":    fileSize,
		},
	})
}

func (ac *ApiController) extensionAllowed(ext string) bool {
	allowed := ac.conf.Upload.Extensions
	if len(allowed) == 0 {
		allowed = defaultExtensions
	}
	for _, a := range allowed {
		if strings.EqualFold(a, ext) {
			return true
		}
	}
	return false
}

// extractZip returns the content of the archive's first .txt entry.
func extractZip(content []byte) ([]byte, string, error) {
	reader, err := zip.NewReader(bytes.NewReader(content), int64(len(content)))
	if err != nil {
		return nil, "", errors.New("invalid zip archive")
	}
	for _, entry := range reader.File {
		if strings.ToLower(filepath.Ext(entry.Name)) != ".txt" {
			continue
		}
		rc, err := entry.Open()
		if err != nil {
			return nil, "", errors.New("unreadable zip entry")
		}
		defer rc.Close()
		data, err := io.ReadAll(rc)
		if err != nil {
			return nil, "", errors.New("unreadable zip entry")
		}
		return data, entry.Name, nil
	}
	return nil, "", errors.New("zip archive contains no .txt file")
}

func (ac *ApiController) ListChats(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, ac.service.ListChats())
}

func (ac *ApiController) DeleteChat(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(r.URL.Query().Get("id"))
	if err != nil {
		http.Error(w, "invalid chat id", http.StatusBadRequest)
		return
	}
	if !ac.service.DeleteChat(id) {
		http.Error(w, "chat not found", http.StatusNotFound)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": "chat deleted"})
}

func (ac *ApiController) GetAnalysis(w http.ResponseWriter, r *http.Request) {
	chat, err := getChat(r, ac.service)
	if err != nil {
		http.Error(w, err.Error(), http.StatusNotFound)
		return
	}
	ac.serveFromCacheOrCompute(w, "analysis:"+chat.ID.String(), func() (any, error) {
		return ac.engine.Comprehensive(chat.Messages), nil
	})
}

func (ac *ApiController) GetStats(w http.ResponseWriter, r *http.Request) {
	chat, err := getChat(r, ac.service)
	if err != nil {
		http.Error(w, err.Error(), http.StatusNotFound)
		return
	}
	ac.serveFromCacheOrCompute(w, "stats:"+chat.ID.String(), func() (any, error) {
		return ac.engine.BasicStats(chat.Messages), nil
	})
}

func (ac *ApiController) GetTimeline(w http.ResponseWriter, r *http.Request) {
	chat, err := getChat(r, ac.service)
	if err != nil {
		http.Error(w, err.Error(), http.StatusNotFound)
		return
	}
	granularity := r.URL.Query().Get("granularity")
	if granularity == "" {
		granularity = analytics.GranularityDaily
	}
	ac.serveFromCacheOrCompute(w, "timeline:"+granularity+":"+chat.ID.String(), func() (any, error) {
		return ac.engine.Timeline(chat.Messages, granularity)
	})
}

func (ac *ApiController) GetParticipants(w http.ResponseWriter, r *http.Request) {
	chat, err := getChat(r, ac.service)
	if err != nil {
		http.Error(w, err.Error(), http.StatusNotFound)
		return
	}
	ac.serveFromCacheOrCompute(w, "participants:"+chat.ID.String(), func() (any, error) {
		return ac.engine.ParticipantStatistics(chat.Messages), nil
	})
}

func (ac *ApiController) GetWordCloud(w http.ResponseWriter, r *http.Request) {
	chat, err := getChat(r, ac.service)
	if err != nil {
		http.Error(w, err.Error(), http.StatusNotFound)
		return
	}
	limit := cast.ToInt(r.URL.Query().Get("limit"))
	if limit <= 0 {
		limit = 100
	}
	ac.serveFromCacheOrCompute(w, "wordcloud:"+cast.ToString(limit)+":"+chat.ID.String(), func() (any, error) {
		return ac.engine.WordFrequency(chat.Messages, limit), nil
	})
}

func (ac *ApiController) GetHeatmap(w http.ResponseWriter, r *http.Request) {
	chat, err := getChat(r, ac.service)
	if err != nil {
		http.Error(w, err.Error(), http.StatusNotFound)
		return
	}
	ac.serveFromCacheOrCompute(w, "heatmap:"+chat.ID.String(), func() (any, error) {
		return ac.engine.ActivityHeatmap(chat.Messages), nil
	})
}

func (ac *ApiController) GetPatterns(w http.ResponseWriter, r *http.Request) {
	chat, err := getChat(r, ac.service)
	if err != nil {
		http.Error(w, err.Error(), http.StatusNotFound)
		return
	}
	ac.serveFromCacheOrCompute(w, "patterns:"+chat.ID.String(), func() (any, error) {
		return ac.engine.ActivityPatterns(chat.Messages), nil
	})
}

func (ac *ApiController) GetInteractions(w http.ResponseWriter, r *http.Request) {
	chat, err := getChat(r, ac.service)
	if err != nil {
		http.Error(w, err.Error(), http.StatusNotFound)
		return
	}
	ac.serveFromCacheOrCompute(w, "interactions:"+chat.ID.String(), func() (any, error) {
		return ac.engine.InteractionMetrics(chat.Messages), nil
	})
}

func (ac *ApiController) GetUserWordClouds(w http.ResponseWriter, r *http.Request) {
	chat, err := getChat(r, ac.service)
	if err != nil {
		http.Error(w, err.Error(), http.StatusNotFound)
		return
	}
	ac.serveFromCacheOrCompute(w, "userwords:"+chat.ID.String(), func() (any, error) {
		return ac.engine.UserWordClouds(chat.Messages), nil
	})
}

func (ac *ApiController) GetContent(w http.ResponseWriter, r *http.Request) {
	chat, err := getChat(r, ac.service)
	if err != nil {
		http.Error(w, err.Error(), http.StatusNotFound)
		return
	}
	ac.serveFromCacheOrCompute(w, "content:"+chat.ID.String(), func() (any, error) {
		return ac.engine.ContentAnalysis(chat.Messages), nil
	})
}

func (ac *ApiController) GetSummary(w http.ResponseWriter, r *http.Request) {
	chat, err := getChat(r, ac.service)
	if err != nil {
		http.Error(w, err.Error(), http.StatusNotFound)
		return
	}
	ac.serveFromCacheOrCompute(w, "summary:"+chat.ID.String(), func() (any, error) {
		return ac.engine.Summary(chat.Messages), nil
	})
}
