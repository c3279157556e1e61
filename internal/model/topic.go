package model

// Pipeline topics. The account fan-out topic is consumed by three independent
// groups (video report, channel report, exclusions), which is what gives each
// stage its own copy of every WorkUnit.
const (
	TopicAccounts          = "videxcl.accounts"
	TopicVideoMetadata     = "videxcl.videos.metadata"
	TopicChannelMetadata   = "videxcl.channels.metadata"
	TopicThumbnailDispatch = "videxcl.thumbnails.dispatch"
	TopicThumbnailProcess  = "videxcl.thumbnails.process"
	TopicThumbnailCrop     = "videxcl.thumbnails.crop"
	TopicAgeEvaluation     = "videxcl.thumbnails.age"
)

// Consumer group IDs, one per stage.
const (
	GroupReportVideo       = "videxcl-report-video"
	GroupReportChannel     = "videxcl-report-channel"
	GroupExclusions        = "videxcl-exclusions"
	GroupEnrichVideo       = "videxcl-enrich-video"
	GroupEnrichChannel     = "videxcl-enrich-channel"
	GroupThumbnailDispatch = "videxcl-thumbnail-dispatch"
	GroupThumbnailProcess  = "videxcl-thumbnail-process"
	GroupThumbnailCrop     = "videxcl-thumbnail-crop"
	GroupAgeEvaluation     = "videxcl-age-evaluate"
)
