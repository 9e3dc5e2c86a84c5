package chrome

import (
	"context"
	"fmt"
	"time"

	"github.com/LouYuanbo1/seoulcrawler/internal/config"
	"github.com/LouYuanbo1/seoulcrawler/internal/domain/entity"
	"github.com/go-rod/rod"
	"github.com/go-rod/rod/lib/launcher"
	"github.com/go-rod/stealth"
)

type rodSession struct {
	ctx      context.Context
	launcher *launcher.Launcher
	browser  *rod.Browser
	page     *rod.Page
}

func InitRodSession(ctx context.Context, cfg *config.Config) (Session, error) {
	l := CreateLauncher(
		WithBin(cfg.Rod.Bin),
		WithUserDataDir(cfg.Rod.UserDataDir),
		WithHeadless(cfg.Rod.Headless),
		WithDisableBlinkFeatures(cfg.Rod.DisableBlinkFeatures),
		WithIncognito(cfg.Rod.Incognito),
		WithDisableDevShmUsage(cfg.Rod.DisableDevShmUsage),
		WithNoSandbox(cfg.Rod.NoSandbox),
		WithUserAgent(cfg.Rod.UserAgent),
		WithLeakless(cfg.Rod.Leakless),
	)
	controlURL, err := l.Launch()
	if err != nil {
		return nil, fmt.Errorf("launch browser: %w: %w", entity.ErrSessionFailure, err)
	}

	browser := rod.New().Context(ctx).ControlURL(controlURL).Trace(cfg.Rod.Trace)
	if err := browser.Connect(); err != nil {
		l.Kill()
		return nil, fmt.Errorf("connect browser: %w: %w", entity.ErrSessionFailure, err)
	}
	page, err := stealth.Page(browser)
	if err != nil {
		_ = browser.Close()
		return nil, fmt.Errorf("create page: %w: %w", entity.ErrSessionFailure, err)
	}
	return &rodSession{ctx: ctx, launcher: l, browser: browser, page: page}, nil
}

// Close runs detached from the run context so an interrupted run still shuts
// the browser down.
func (rs *rodSession) Close() error {
	return release(rs.browser.Context(context.Background()).Close, rs.launcher.Kill)
}

// release asks the browser to close and kills its process when that fails.
func release(closeBrowser func() error, kill func()) error {
	if err := closeBrowser(); err != nil {
		kill()
	}
	return nil
}

func (rs *rodSession) Navigate(url string) error {
	if err := rs.page.Navigate(url); err != nil {
		return classify(rs.ctx, "navigate", err)
	}
	return classify(rs.ctx, "wait load", rs.page.WaitLoad())
}

func (rs *rodSession) ExecuteScript(script string) error {
	_, err := rs.page.Eval(fmt.Sprintf("() => { %s\n}", script))
	return classify(rs.ctx, "execute script", err)
}

func (rs *rodSession) QueryAll(selector string) ([]Element, error) {
	found, err := rs.page.Elements(selector)
	if err != nil {
		return nil, classify(rs.ctx, "query "+selector, err)
	}
	return wrapRodElements(rs.ctx, found), nil
}

func (rs *rodSession) WaitAll(selector string, timeout time.Duration) ([]Element, error) {
	page := rs.page.Timeout(timeout)
	_, err := page.Element(selector)
	page.CancelTimeout()
	if err != nil {
		return nil, classify(rs.ctx, "wait "+selector, err)
	}
	return rs.QueryAll(selector)
}

func (rs *rodSession) HTML() (string, error) {
	html, err := rs.page.HTML()
	return html, classify(rs.ctx, "page html", err)
}

type rodElement struct {
	ctx context.Context
	el  *rod.Element
}

func wrapRodElements(ctx context.Context, found rod.Elements) []Element {
	out := make([]Element, 0, len(found))
	for _, el := range found {
		out = append(out, &rodElement{ctx: ctx, el: el})
	}
	return out
}

func (re *rodElement) Text() (string, error) {
	text, err := re.el.Text()
	return text, classify(re.ctx, "element text", err)
}

func (re *rodElement) Attribute(name string) (string, bool, error) {
	value, err := re.el.Attribute(name)
	if err != nil {
		return "", false, classify(re.ctx, "element attribute", err)
	}
	if value == nil {
		return "", false, nil
	}
	return *value, true, nil
}

func (re *rodElement) QueryAll(selector string) ([]Element, error) {
	found, err := re.el.Elements(selector)
	if err != nil {
		return nil, classify(re.ctx, "query "+selector, err)
	}
	return wrapRodElements(re.ctx, found), nil
}

func (re *rodElement) ScrollIntoView() error {
	_, err := re.el.Eval(`() => this.scrollIntoView({block: 'center'})`)
	return classify(re.ctx, "scroll into view", err)
}

func (re *rodElement) Click() error {
	_, err := re.el.Eval(`() => this.click()`)
	return classify(re.ctx, "click", err)
}
