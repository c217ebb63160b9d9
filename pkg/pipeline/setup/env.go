package setup

const (
	EnvOpenAiApiKey     = "OPENAI_API_KEY"
	EnvOpenAiTextModel  = "OPENAI_TEXT_MODEL"
	EnvOpenAiImageModel = "OPENAI_IMAGE_MODEL"
	EnvFrameCount       = "FRAME_COUNT"
	EnvApiIpPort        = "API_IP_PORT"
	EnvPinataJwtKey     = "PINATA_JWT_KEY"
)
