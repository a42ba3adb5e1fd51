package i18n

// Message keys. Every key has an Arabic and an English entry in the catalog.
const (
	// Per-view validation and failure messages.
	MsgImagePromptRequired = "image.prompt_required"
	MsgImageFailed         = "image.failed"
	MsgEditInputRequired   = "edit.input_required"
	MsgEditFailed          = "edit.failed"
	MsgVideoPromptRequired = "video.prompt_required"
	MsgVideoFailed         = "video.failed"

	// Failures raised by the media client itself.
	MsgNoImage        = "media.no_image"
	MsgEditNoImage    = "media.edit_no_image"
	MsgVideoBlocked   = "media.video_blocked"
	MsgDownloadFailed = "media.download_failed"
	MsgPollExhausted  = "media.poll_exhausted"
	MsgNotImage       = "media.not_image"
	MsgTooLarge       = "media.too_large"

	// Remote failure classes on the video path.
	MsgInvalidKey     = "classify.invalid_key"
	MsgEntityNotFound = "classify.entity_not_found"
	MsgRateLimited    = "classify.rate_limited"
	MsgBilling        = "classify.billing"
	MsgUnexpected     = "classify.unexpected"

	// Credential selection.
	MsgKeyRequired      = "keys.required"
	MsgKeyBannerTitle   = "keys.banner_title"
	MsgKeyBannerBody    = "keys.banner_body"
	MsgKeySelectButton  = "keys.select_button"
	MsgKeyInvalidSubmit = "keys.invalid_submit"

	// Shell copy.
	MsgAppTitle         = "ui.title"
	MsgAppSubtitle      = "ui.subtitle"
	MsgFooter           = "ui.footer"
	MsgTabImage         = "ui.tab_image"
	MsgTabEdit          = "ui.tab_edit"
	MsgTabVideo         = "ui.tab_video"
	MsgImageHeading     = "ui.image_heading"
	MsgImagePlaceholder = "ui.image_placeholder"
	MsgImageButton      = "ui.image_button"
	MsgImageEmpty       = "ui.image_empty"
	MsgEditHeading      = "ui.edit_heading"
	MsgEditUpload       = "ui.edit_upload"
	MsgEditPlaceholder  = "ui.edit_placeholder"
	MsgEditButton       = "ui.edit_button"
	MsgEditEmpty        = "ui.edit_empty"
	MsgVideoHeading     = "ui.video_heading"
	MsgVideoIntro       = "ui.video_intro"
	MsgVideoPlaceholder = "ui.video_placeholder"
	MsgVideoButton      = "ui.video_button"
	MsgVideoEmpty       = "ui.video_empty"
	MsgDownload         = "ui.download"
)

// VideoLoadingMessages lists the rotating status lines shown while a video job
// is in flight, in display order.
var VideoLoadingMessages = []string{
	"ui.video_loading_1",
	"ui.video_loading_2",
	"ui.video_loading_3",
	"ui.video_loading_4",
	"ui.video_loading_5",
	"ui.video_loading_6",
	"ui.video_loading_7",
}
