package service

const (
	modelInfoCacheKey = "model-info:%s"

	logPromptLength = 50
)
