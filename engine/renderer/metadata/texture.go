package metadata

/**
 * @brief The result shape of the image decode service: a raw pixel buffer
 * plus its dimensions. The engine does not care how decoding happened.
 *
 * The decode side is responsible for channel normalization: Pixels must hold
 * Width*Height*4 bytes of RGBA data. The texture path rejects anything else
 * instead of misinterpreting the byte layout.
 */
type ImageData struct {
	Width        uint32
	Height       uint32
	ChannelCount uint8
	Pixels       []uint8
}

/**
 * @brief Represents a texture.
 */
type Texture struct {
	/** @brief The texture Name. Generated when the source has none. */
	Name string
	/** @brief The texture Width in pixels, captured at creation. */
	Width uint32
	/** @brief The texture Height in pixels, captured at creation. */
	Height uint32
	/** @brief The GPU texture Handle. Owned by the backend. */
	Handle uint32
	/** @brief Backend specific data. Owned by the backend. */
	InternalData interface{}
}
