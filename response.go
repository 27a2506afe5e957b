package capture

import "github.com/ysmood/gson"

// ContentResponse is the decoded body of a content extraction.
//
// Success decodes from the service's `success` field; if the field is
// absent it is false.
type ContentResponse struct {
	Success     bool   `json:"success"`
	HTML        string `json:"html"`
	TextContent string `json:"textContent"`
	Markdown    string `json:"markdown"`
}

// MetadataResponse is the decoded body of a metadata extraction. Metadata
// values are arbitrary JSON — strings, numbers, nested objects — so each
// leaf is a [gson.JSON] for typed access without a schema:
//
//	res, _ := c.FetchMetadata(ctx, "https://example.com", nil)
//	title := res.Metadata["title"].Str()
type MetadataResponse struct {
	Success  bool                 `json:"success"`
	Metadata map[string]gson.JSON `json:"metadata"`
}
