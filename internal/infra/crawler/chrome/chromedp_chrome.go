package chrome

import (
	"context"
	"fmt"
	"time"

	"github.com/LouYuanbo1/seoulcrawler/internal/config"
	"github.com/LouYuanbo1/seoulcrawler/internal/domain/entity"
	"github.com/chromedp/cdproto/cdp"
	"github.com/chromedp/cdproto/dom"
	"github.com/chromedp/cdproto/runtime"
	"github.com/chromedp/chromedp"
)

type chromedpSession struct {
	pageCtx       context.Context
	pageCtxFuc    context.CancelFunc
	allocCtxFuc   context.CancelFunc
	timeoutCtxFuc context.CancelFunc
}

func InitChromedpSession(ctx context.Context, cfg *config.Config) (Session, error) {
	opts := append(chromedp.DefaultExecAllocatorOptions[:],
		chromedp.Flag("headless", cfg.Chromedp.Headless),
		chromedp.Flag("incognito", cfg.Chromedp.Incognito),
		chromedp.Flag("disable-dev-shm-usage", cfg.Chromedp.DisableDevShmUsage),
		chromedp.Flag("no-sandbox", cfg.Chromedp.NoSandbox),
	)
	if cfg.Chromedp.DisableBlinkFeatures != "" {
		opts = append(opts, chromedp.Flag("disable-blink-features", cfg.Chromedp.DisableBlinkFeatures))
	}
	if cfg.Chromedp.UserDataDir != "" {
		opts = append(opts, chromedp.UserDataDir(cfg.Chromedp.UserDataDir))
	}
	if cfg.Chromedp.UserAgent != "" {
		opts = append(opts, chromedp.UserAgent(cfg.Chromedp.UserAgent))
	}
	timeoutCtx, cancelTimeout := context.WithTimeout(ctx, time.Duration(cfg.Chromedp.LifeTime)*time.Second)
	allocCtx, cancelAlloc := chromedp.NewExecAllocator(timeoutCtx, opts...)
	pageCtx, cancelPage := chromedp.NewContext(allocCtx)

	cs := &chromedpSession{
		pageCtx:       pageCtx,
		pageCtxFuc:    cancelPage,
		allocCtxFuc:   cancelAlloc,
		timeoutCtxFuc: cancelTimeout,
	}
	// an empty Run starts the browser
	if err := chromedp.Run(pageCtx); err != nil {
		cs.Close()
		return nil, fmt.Errorf("start browser: %w: %w", entity.ErrSessionFailure, err)
	}
	return cs, nil
}

func (cs *chromedpSession) Close() error {
	err := chromedp.Cancel(cs.pageCtx)
	cs.pageCtxFuc()
	cs.allocCtxFuc()
	cs.timeoutCtxFuc()
	return err
}

func (cs *chromedpSession) Navigate(url string) error {
	return classify(cs.pageCtx, "navigate", chromedp.Run(cs.pageCtx, chromedp.Navigate(url)))
}

func (cs *chromedpSession) ExecuteScript(script string) error {
	js := fmt.Sprintf("(function() { %s\n})()", script)
	return classify(cs.pageCtx, "execute script", chromedp.Run(cs.pageCtx, chromedp.Evaluate(js, nil)))
}

func (cs *chromedpSession) QueryAll(selector string) ([]Element, error) {
	var nodes []*cdp.Node
	err := chromedp.Run(cs.pageCtx, chromedp.Nodes(selector, &nodes, chromedp.ByQueryAll, chromedp.AtLeast(0)))
	if err != nil {
		return nil, classify(cs.pageCtx, "query "+selector, err)
	}
	return wrapNodes(cs.pageCtx, nodes), nil
}

func (cs *chromedpSession) WaitAll(selector string, timeout time.Duration) ([]Element, error) {
	waitCtx, cancel := context.WithTimeout(cs.pageCtx, timeout)
	defer cancel()
	var nodes []*cdp.Node
	if err := chromedp.Run(waitCtx, chromedp.Nodes(selector, &nodes, chromedp.ByQueryAll)); err != nil {
		return nil, classify(cs.pageCtx, "wait "+selector, err)
	}
	return wrapNodes(cs.pageCtx, nodes), nil
}

func (cs *chromedpSession) HTML() (string, error) {
	var html string
	err := chromedp.Run(cs.pageCtx, chromedp.OuterHTML("html", &html, chromedp.ByQuery))
	return html, classify(cs.pageCtx, "page html", err)
}

type chromedpElement struct {
	ctx  context.Context
	node *cdp.Node
}

func wrapNodes(ctx context.Context, nodes []*cdp.Node) []Element {
	out := make([]Element, 0, len(nodes))
	for _, node := range nodes {
		out = append(out, &chromedpElement{ctx: ctx, node: node})
	}
	return out
}

func (ce *chromedpElement) ids() []cdp.NodeID {
	return []cdp.NodeID{ce.node.NodeID}
}

func (ce *chromedpElement) Text() (string, error) {
	var text string
	err := chromedp.Run(ce.ctx, chromedp.Text(ce.ids(), &text, chromedp.ByNodeID))
	return text, classify(ce.ctx, "element text", err)
}

func (ce *chromedpElement) Attribute(name string) (string, bool, error) {
	var (
		value string
		ok    bool
	)
	err := chromedp.Run(ce.ctx, chromedp.AttributeValue(ce.ids(), name, &value, &ok, chromedp.ByNodeID))
	if err != nil {
		return "", false, classify(ce.ctx, "element attribute", err)
	}
	return value, ok, nil
}

func (ce *chromedpElement) QueryAll(selector string) ([]Element, error) {
	var nodes []*cdp.Node
	err := chromedp.Run(ce.ctx, chromedp.Nodes(selector, &nodes, chromedp.ByQueryAll, chromedp.FromNode(ce.node), chromedp.AtLeast(0)))
	if err != nil {
		return nil, classify(ce.ctx, "query "+selector, err)
	}
	return wrapNodes(ce.ctx, nodes), nil
}

// callOn runs function with this bound to the node's remote object.
func (ce *chromedpElement) callOn(op, function string) error {
	err := chromedp.Run(ce.ctx, chromedp.ActionFunc(func(ctx context.Context) error {
		obj, err := dom.ResolveNode().WithNodeID(ce.node.NodeID).Do(ctx)
		if err != nil {
			return err
		}
		_, exp, err := runtime.CallFunctionOn(function).WithObjectID(obj.ObjectID).Do(ctx)
		if err != nil {
			return err
		}
		if exp != nil {
			return exp
		}
		return nil
	}))
	return classify(ce.ctx, op, err)
}

func (ce *chromedpElement) ScrollIntoView() error {
	return ce.callOn("scroll into view", `function() { this.scrollIntoView({block: 'center'}); }`)
}

func (ce *chromedpElement) Click() error {
	return ce.callOn("click", `function() { this.click(); }`)
}
