package shared

// Common identifier types shared across modules.
type (
	// DiscordID is a Discord snowflake or "name#discriminator" user handle.
	DiscordID string

	// GuildID identifies a Discord guild (server).
	GuildID string

	// ChannelID identifies a text channel. Live match state is keyed by it.
	ChannelID string

	// MessageID identifies a posted message. Kept only as a presentation
	// pointer; the database row is the system of record.
	MessageID string
)
