package api

import (
	"context"
	"os"

	"lumachat.dev/luma/pkg/common"
	"lumachat.dev/luma/pkg/luma/domain"
	"lumachat.dev/luma/pkg/luma/domain/promptfilters/document"
	"lumachat.dev/luma/pkg/luma/domain/promptfilters/image"
	domainnews "lumachat.dev/luma/pkg/luma/domain/promptfilters/news"
	domainweb "lumachat.dev/luma/pkg/luma/domain/promptfilters/web"
	domainwiki "lumachat.dev/luma/pkg/luma/domain/promptfilters/wiki"
	"lumachat.dev/luma/pkg/luma/domain/vision"
	"lumachat.dev/luma/pkg/luma/infrastructure/assets"
	"lumachat.dev/luma/pkg/luma/infrastructure/mlserver"
	"lumachat.dev/luma/pkg/luma/infrastructure/ollama"
	"lumachat.dev/luma/pkg/luma/infrastructure/pdfdoc"
	"lumachat.dev/luma/pkg/luma/infrastructure/rss"
	infraweb "lumachat.dev/luma/pkg/luma/infrastructure/web"
	infrawiki "lumachat.dev/luma/pkg/luma/infrastructure/wiki"
)

const (
	ConfigKeyLogPath = "logPath"
	// Feature toggles for the prompt filter chain. Every filter is cheap when its trigger
	// doesn't match, so they all default to enabled.
	ConfigKeyEnableWebContext      = "enableWebContext"
	ConfigKeyEnableWikiContext     = "enableWikiContext"
	ConfigKeyEnableNewsContext     = "enableNewsContext"
	ConfigKeyEnableDocumentContext = "enableDocumentContext"
	ConfigKeyEnableImageContext    = "enableImageContext"
)

type api struct {
	chatService   *domain.ChatService
	describer     *vision.Describer
	discovery     *assets.Discovery
	languageModel *ollama.Client
	visionServer  *mlserver.Client
}

// API is the entrypoint to Luma. It shouldn't contain any logic of its own; it glues all the
// components together and provides a public interface for the chat and vision services.
// This API can be used in various contexts: in an IRC chat, a console REPL, an HTTP server etc.
type API interface {
	// Respond completes the prompt and returns the full response text in one piece.
	Respond(ctx context.Context, prompt string) (string, error)
	// RespondStream completes the prompt, invoking `onDelta` with each newly revealed piece
	// of response text as it arrives, and returns the full response at the end.
	RespondStream(ctx context.Context, prompt string, onDelta func(text string)) (string, error)
	// DescribeImage turns raw image bytes into a human-readable description.
	DescribeImage(ctx context.Context, imageData []byte) (*vision.DescriptionResult, error)
	// DescribeImageFile same as DescribeImage, for an image on the local filesystem.
	DescribeImageFile(ctx context.Context, path string) (*vision.DescriptionResult, error)
	// ModelBundles lists model files discovered on the local machine.
	ModelBundles() ([]assets.Bundle, error)
	// IsHealthy reports whether the backing language model and vision servers are reachable.
	IsHealthy() (languageModel bool, visionServer bool)
}

func NewAPI(config *common.Config) API {
	logger := common.NewFileLogger(config.GetStringOrDefault(ConfigKeyLogPath, "log.txt"))
	languageModel := ollama.NewClient(config, nil, logger)
	visionServer := mlserver.NewClient(config, nil, logger)
	describer := vision.NewDescriber(visionServer, visionServer, config, logger)
	urlFinder := infraweb.NewURLFinder()
	var promptFilters []domain.PromptFilter
	if config.GetBoolOrDefault(ConfigKeyEnableImageContext, true) {
		promptFilters = append(promptFilters, image.NewFilter(urlFinder, describer, logger))
	}
	if config.GetBoolOrDefault(ConfigKeyEnableDocumentContext, true) {
		promptFilters = append(promptFilters, document.NewFilter(pdfdoc.NewTextExtractor(), config, logger))
	}
	if config.GetBoolOrDefault(ConfigKeyEnableWebContext, true) {
		promptFilters = append(promptFilters, domainweb.NewFilter(urlFinder, infraweb.NewPageContentExtractor(), config, logger))
	}
	if config.GetBoolOrDefault(ConfigKeyEnableNewsContext, true) {
		promptFilters = append(promptFilters, domainnews.NewFilter(rss.NewNewsProvider(config), config, logger))
	}
	if config.GetBoolOrDefault(ConfigKeyEnableWikiContext, true) {
		promptFilters = append(promptFilters, domainwiki.NewFilter(infrawiki.NewArticleProvider(), config, logger))
	}
	return &api{
		chatService:   domain.NewChatService(languageModel, promptFilters),
		describer:     describer,
		discovery:     assets.NewDiscovery(config, logger),
		languageModel: languageModel,
		visionServer:  visionServer,
	}
}

func (a *api) Respond(ctx context.Context, prompt string) (string, error) {
	return a.chatService.Respond(ctx, prompt)
}

func (a *api) RespondStream(ctx context.Context, prompt string, onDelta func(text string)) (string, error) {
	return a.chatService.RespondStream(ctx, prompt, onDelta)
}

func (a *api) DescribeImage(ctx context.Context, imageData []byte) (*vision.DescriptionResult, error) {
	return a.describer.Describe(ctx, imageData)
}

func (a *api) DescribeImageFile(ctx context.Context, path string) (*vision.DescriptionResult, error) {
	imageData, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return a.describer.Describe(ctx, imageData)
}

func (a *api) ModelBundles() ([]assets.Bundle, error) {
	return a.discovery.ListBundles()
}

func (a *api) IsHealthy() (bool, bool) {
	return a.languageModel.IsHealthy(), a.visionServer.IsHealthy()
}
