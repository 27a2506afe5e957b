package capture

// Typed option structs for each endpoint. They cover the commonly used
// parameters with Go-native fields; anything else goes through Extra, which
// wins on key collisions. Fields at their zero value are not sent, so the
// service's defaults apply. To force an explicit false or zero onto the
// wire, set it in Extra.

// ScreenshotOptions controls image captures.
type ScreenshotOptions struct {
	// Viewport.
	ViewportWidth  int
	ViewportHeight int
	ScaleFactor    float64

	// Capture behavior.
	Full      bool   // capture the full scrollable page
	Delay     int    // seconds to wait before capturing
	WaitFor   string // CSS selector to wait for
	WaitForID string // element id to wait for

	// Visual modifications.
	DarkMode    bool
	Transparent bool
	Selector    string // clip the capture to a CSS selector
	SelectorID  string // clip the capture to an element id

	// Page cleanup and detection.
	BlockCookieBanners bool
	BlockAds           bool
	BypassBotDetection bool

	// Output format.
	Type         string // png, jpeg, webp
	BestFormat   bool   // let the service pick the smallest format
	ResizeWidth  int
	ResizeHeight int

	// Request behavior.
	HTTPAuth  string // basic auth for the target, "user:pass"
	UserAgent string
	Fresh     bool // bypass the service-side cache

	// Extra holds additional wire parameters and overrides typed fields.
	Extra RequestOptions
}

// RequestOptions implements [Options]. A nil receiver yields no options.
func (o *ScreenshotOptions) RequestOptions() RequestOptions {
	if o == nil {
		return nil
	}
	p := RequestOptions{}
	p.setInt("vw", o.ViewportWidth)
	p.setInt("vh", o.ViewportHeight)
	p.setFloat("scaleFactor", o.ScaleFactor)
	p.setBool("full", o.Full)
	p.setInt("delay", o.Delay)
	p.setString("waitFor", o.WaitFor)
	p.setString("waitForId", o.WaitForID)
	p.setBool("darkMode", o.DarkMode)
	p.setBool("transparent", o.Transparent)
	p.setString("selector", o.Selector)
	p.setString("selectorId", o.SelectorID)
	p.setBool("blockCookieBanners", o.BlockCookieBanners)
	p.setBool("blockAds", o.BlockAds)
	p.setBool("bypassBotDetection", o.BypassBotDetection)
	p.setString("type", o.Type)
	p.setBool("bestFormat", o.BestFormat)
	p.setInt("resizeWidth", o.ResizeWidth)
	p.setInt("resizeHeight", o.ResizeHeight)
	p.setString("httpAuth", o.HTTPAuth)
	p.setString("userAgent", o.UserAgent)
	p.setBool("fresh", o.Fresh)
	p.merge(o.Extra)
	return p
}

// PDFOptions controls PDF captures.
type PDFOptions struct {
	HTTPAuth  string
	UserAgent string

	// Paper dimensions: CSS length strings ("8.5in", "210mm") or a named
	// Format ("A4", "Letter"). Format takes precedence on the service side.
	Width  string
	Height string
	Format string

	// Margins, CSS length strings.
	MarginTop    string
	MarginRight  string
	MarginBottom string
	MarginLeft   string

	Scale     float64
	Landscape bool
	Delay     int // seconds to wait before printing

	// Storage and delivery.
	FileName   string
	S3ACL      string
	S3Redirect bool
	Timestamp  bool

	// Extra holds additional wire parameters and overrides typed fields.
	Extra RequestOptions
}

// RequestOptions implements [Options]. A nil receiver yields no options.
func (o *PDFOptions) RequestOptions() RequestOptions {
	if o == nil {
		return nil
	}
	p := RequestOptions{}
	p.setString("httpAuth", o.HTTPAuth)
	p.setString("userAgent", o.UserAgent)
	p.setString("width", o.Width)
	p.setString("height", o.Height)
	p.setString("format", o.Format)
	p.setString("marginTop", o.MarginTop)
	p.setString("marginRight", o.MarginRight)
	p.setString("marginBottom", o.MarginBottom)
	p.setString("marginLeft", o.MarginLeft)
	p.setFloat("scale", o.Scale)
	p.setBool("landscape", o.Landscape)
	p.setInt("delay", o.Delay)
	p.setString("fileName", o.FileName)
	p.setString("s3Acl", o.S3ACL)
	p.setBool("s3Redirect", o.S3Redirect)
	p.setBool("timestamp", o.Timestamp)
	p.merge(o.Extra)
	return p
}

// ContentOptions controls content extraction.
type ContentOptions struct {
	HTTPAuth  string
	UserAgent string
	Delay     int    // seconds to wait before extracting
	WaitFor   string // CSS selector to wait for
	WaitForID string // element id to wait for

	// Extra holds additional wire parameters and overrides typed fields.
	Extra RequestOptions
}

// RequestOptions implements [Options]. A nil receiver yields no options.
func (o *ContentOptions) RequestOptions() RequestOptions {
	if o == nil {
		return nil
	}
	p := RequestOptions{}
	p.setString("httpAuth", o.HTTPAuth)
	p.setString("userAgent", o.UserAgent)
	p.setInt("delay", o.Delay)
	p.setString("waitFor", o.WaitFor)
	p.setString("waitForId", o.WaitForID)
	p.merge(o.Extra)
	return p
}

// MetadataOptions controls metadata extraction. The endpoint takes no
// dedicated parameters today; Extra carries anything the service adds.
type MetadataOptions struct {
	Extra RequestOptions
}

// RequestOptions implements [Options]. A nil receiver yields no options.
func (o *MetadataOptions) RequestOptions() RequestOptions {
	if o == nil {
		return nil
	}
	p := RequestOptions{}
	p.merge(o.Extra)
	return p
}
