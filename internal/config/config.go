package config

const (
	DriverRod      = "rod"
	DriverChromedp = "chromedp"

	RenderWaitFixed    = "fixed"
	RenderWaitSelector = "selector"
)

type Config struct {
	Browser struct {
		Driver string `json:"driver"`
	} `json:"browser"`

	Log struct {
		Level       string `json:"level"`
		Development bool   `json:"development"`
	} `json:"log"`

	Output struct {
		Dir string `json:"dir"`
	} `json:"output"`

	Elasticsearch struct {
		Enabled  bool   `json:"enabled"`
		Username string `json:"username"`
		Password string `json:"password"`
		Address  string `json:"address"`
	} `json:"elasticsearch"`

	Rod struct {
		UserDataDir          string `json:"user_data_dir"`
		Headless             bool   `json:"headless"`
		DisableBlinkFeatures string `json:"disable_blink_features"`
		Incognito            bool   `json:"incognito"`
		DisableDevShmUsage   bool   `json:"disable_dev_shm_usage"`
		NoSandbox            bool   `json:"no_sandbox"`
		UserAgent            string `json:"user_agent"`
		Leakless             bool   `json:"leakless"`
		Bin                  string `json:"bin"`
		Trace                bool   `json:"trace"`
	} `json:"rod"`

	Chromedp struct {
		LifeTime             int    `json:"life_time"`
		UserDataDir          string `json:"user_data_dir"`
		Headless             bool   `json:"headless"`
		DisableBlinkFeatures string `json:"disable_blink_features"`
		Incognito            bool   `json:"incognito"`
		DisableDevShmUsage   bool   `json:"disable_dev_shm_usage"`
		NoSandbox            bool   `json:"no_sandbox"`
		UserAgent            string `json:"user_agent"`
	} `json:"chromedp"`

	Embedder struct {
		Enabled   bool   `json:"enabled"`
		Host      string `json:"host"`
		Port      int    `json:"port"`
		Model     string `json:"model"`
		BatchSize int    `json:"batch_size"`
	} `json:"embedder"`

	Restaurant Restaurant `json:"restaurant"`
	Faq        Faq        `json:"faq"`
}

type RenderWait struct {
	Mode string `json:"mode"`
	// fixed: StandardMillis plus up to RandomMillis of jitter
	StandardMillis int `json:"standard_millis"`
	RandomMillis   int `json:"random_millis"`
	// selector: wait for Selector for at most TimeoutMillis
	Selector      string `json:"selector"`
	TimeoutMillis int    `json:"timeout_millis"`
}

type Restaurant struct {
	BaseURL        string     `json:"base_url"`
	Region         string     `json:"region"`
	Categories     []string   `json:"categories"`
	CardSelectors  []string   `json:"card_selectors"`
	MarkerSelector string     `json:"marker_selector"`
	TitleSelector  string     `json:"title_selector"`
	ScoreSelector  string     `json:"score_selector"`
	CountSelector  string     `json:"count_selector"`
	LatAttr        string     `json:"lat_attr"`
	LngAttr        string     `json:"lng_attr"`
	RenderWait     RenderWait `json:"render_wait"`
	OutputFile     string     `json:"output_file"`
}

type Faq struct {
	URL                string   `json:"url"`
	CategorySelector   string   `json:"category_selector"`
	ExcludedCategories []string `json:"excluded_categories"`
	ItemSelector       string   `json:"item_selector"`
	QuestionSelector   string   `json:"question_selector"`
	RevealSelector     string   `json:"reveal_selector"`
	AnswerSelector     string   `json:"answer_selector"`
	PagingSelector     string   `json:"paging_selector"`
	CurrentClass       string   `json:"current_class"`
	AnswerPrefix       string   `json:"answer_prefix"`
	AnswerMarker       string   `json:"answer_marker"`

	LoadSettleMillis     int `json:"load_settle_millis"`
	CategorySettleMillis int `json:"category_settle_millis"`
	ScrollSettleMillis   int `json:"scroll_settle_millis"`
	RevealSettleMillis   int `json:"reveal_settle_millis"`
	PageSettleMillis     int `json:"page_settle_millis"`
	ItemTimeoutMillis    int `json:"item_timeout_millis"`

	OutputFile string `json:"output_file"`
}
