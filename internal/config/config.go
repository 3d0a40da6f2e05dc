package config

import (
	"fmt"
	"net/url"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/pelletier/go-toml/v2"

	"recruitbot/internal/domain"
	"recruitbot/pkg/tz"
)

// Default IDs of the PyCon Italia server.
const (
	defaultRecruitingChannelID = "1108821274395934823"
	defaultLunchChannelID      = "1108824701175857224"
	defaultLunchRoleID         = "1109064288418676846"
	defaultJobSeekerRoleID     = "1109813880105996328"
	defaultRecruitingRoleID    = "1109062803068829769"
)

type Config struct {
	Token   string
	GuildID string

	RecruitingChannelID string
	LunchChannelID      string
	LunchRoleID         string
	JobSeekerRoleID     string
	RecruitingRoleID    string

	LedgerURL    string
	LedgerSetKey string

	ScheduleEndpoint string
	ConferenceCode   string
	ScheduleTimeout  time.Duration
	PollInterval     time.Duration
	ActiveDays       []int
	TimeZone         string
	Location         *time.Location

	LunchMenuURL string
	Locale       string

	LogLevel string
	LogJSON  bool
}

// fileConfig mirrors the optional TOML file named by CONFIG_FILE.
type fileConfig struct {
	Discord struct {
		GuildID             string `toml:"guild_id"`
		RecruitingChannelID string `toml:"recruiting_channel_id"`
		LunchChannelID      string `toml:"lunch_channel_id"`
		LunchRoleID         string `toml:"lunch_role_id"`
		JobSeekerRoleID     string `toml:"job_seeker_role_id"`
		RecruitingRoleID    string `toml:"recruiting_role_id"`
	} `toml:"discord"`
	Ledger struct {
		URL    string `toml:"url"`
		SetKey string `toml:"set_key"`
	} `toml:"ledger"`
	Schedule struct {
		Endpoint       string `toml:"endpoint"`
		ConferenceCode string `toml:"conference_code"`
		Timeout        string `toml:"timeout"`
		PollInterval   string `toml:"poll_interval"`
		ActiveDays     []int  `toml:"active_days"`
		TimeZone       string `toml:"timezone"`
	} `toml:"schedule"`
	Announcements struct {
		LunchMenuURL string `toml:"lunch_menu_url"`
		Locale       string `toml:"locale"`
	} `toml:"announcements"`
	Log struct {
		Level string `toml:"level"`
		JSON  bool   `toml:"json"`
	} `toml:"log"`
}

func defaults() *Config {
	return &Config{
		RecruitingChannelID: defaultRecruitingChannelID,
		LunchChannelID:      defaultLunchChannelID,
		LunchRoleID:         defaultLunchRoleID,
		JobSeekerRoleID:     defaultJobSeekerRoleID,
		RecruitingRoleID:    defaultRecruitingRoleID,
		LedgerSetKey:        "notified_events",
		ScheduleEndpoint:    "https://beri.python.it/graphql",
		ConferenceCode:      "pycon2023",
		ScheduleTimeout:     20 * time.Second,
		PollInterval:        5 * time.Minute,
		ActiveDays:          []int{25, 26, 27, 28},
		TimeZone:            "Europe/Rome",
		LunchMenuURL:        "https://pycon.it/lunch",
		Locale:              "en",
		LogLevel:            "info",
	}
}

// Load charge la configuration (.env, fichier TOML optionnel, variables
// d'environnement) et la valide. Les variables d'environnement l'emportent.
func Load() (*Config, error) {
	// .env est optionnel lorsque les variables sont fournies par l'environnement (Docker, CI, etc.).
	_ = godotenv.Load()
	return load(os.Getenv)
}

func load(getenv func(string) string) (*Config, error) {
	cfg := defaults()

	if path := strings.TrimSpace(getenv("CONFIG_FILE")); path != "" {
		if err := cfg.applyFile(path); err != nil {
			return nil, err
		}
	}
	if err := cfg.applyEnv(getenv); err != nil {
		return nil, err
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) applyFile(path string) error {
	raw, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("config: lecture de %s: %w", path, err)
	}
	var fc fileConfig
	if err := toml.Unmarshal(raw, &fc); err != nil {
		return fmt.Errorf("config: %s invalide: %w", path, err)
	}

	setString(&c.GuildID, fc.Discord.GuildID)
	setString(&c.RecruitingChannelID, fc.Discord.RecruitingChannelID)
	setString(&c.LunchChannelID, fc.Discord.LunchChannelID)
	setString(&c.LunchRoleID, fc.Discord.LunchRoleID)
	setString(&c.JobSeekerRoleID, fc.Discord.JobSeekerRoleID)
	setString(&c.RecruitingRoleID, fc.Discord.RecruitingRoleID)
	setString(&c.LedgerURL, fc.Ledger.URL)
	setString(&c.LedgerSetKey, fc.Ledger.SetKey)
	setString(&c.ScheduleEndpoint, fc.Schedule.Endpoint)
	setString(&c.ConferenceCode, fc.Schedule.ConferenceCode)
	setString(&c.TimeZone, fc.Schedule.TimeZone)
	setString(&c.LunchMenuURL, fc.Announcements.LunchMenuURL)
	setString(&c.Locale, fc.Announcements.Locale)
	setString(&c.LogLevel, fc.Log.Level)
	if fc.Log.JSON {
		c.LogJSON = true
	}
	if len(fc.Schedule.ActiveDays) > 0 {
		c.ActiveDays = fc.Schedule.ActiveDays
	}
	if err := setDuration(&c.ScheduleTimeout, "schedule.timeout", fc.Schedule.Timeout); err != nil {
		return err
	}
	return setDuration(&c.PollInterval, "schedule.poll_interval", fc.Schedule.PollInterval)
}

func (c *Config) applyEnv(getenv func(string) string) error {
	setString(&c.Token, firstNonEmpty(getenv("BOT_TOKEN"), getenv("TOKEN")))
	setString(&c.GuildID, getenv("DISCORD_GUILD"))
	setString(&c.RecruitingChannelID, getenv("RECRUITING_CHANNEL_ID"))
	setString(&c.LunchChannelID, getenv("LUNCH_CHANNEL_ID"))
	setString(&c.LunchRoleID, getenv("LUNCH_ROLE_ID"))
	setString(&c.JobSeekerRoleID, getenv("LOOKING_FOR_A_JOB_ROLE_ID"))
	setString(&c.RecruitingRoleID, getenv("RECRUITING_ROLE_ID"))
	setString(&c.LedgerURL, firstNonEmpty(getenv("LEDGER_URL"), getenv("REDIS_URL"), getenv("DATABASE_URL")))
	setString(&c.LedgerSetKey, getenv("LEDGER_SET_KEY"))
	setString(&c.ScheduleEndpoint, getenv("SCHEDULE_ENDPOINT"))
	setString(&c.ConferenceCode, getenv("CONFERENCE_CODE"))
	setString(&c.TimeZone, getenv("TIMEZONE"))
	setString(&c.LunchMenuURL, getenv("LUNCH_MENU_URL"))
	setString(&c.Locale, getenv("LOCALE"))
	setString(&c.LogLevel, getenv("LOG_LEVEL"))
	if v := strings.TrimSpace(getenv("LOG_JSON")); v != "" {
		c.LogJSON = v == "1" || strings.EqualFold(v, "true")
	}

	if v := strings.TrimSpace(getenv("ACTIVE_DAYS")); v != "" {
		days, err := domain.ParseDays(v)
		if err != nil {
			return fmt.Errorf("config: ACTIVE_DAYS invalide: %w", err)
		}
		c.ActiveDays = days
	}
	if err := setDuration(&c.ScheduleTimeout, "SCHEDULE_TIMEOUT", getenv("SCHEDULE_TIMEOUT")); err != nil {
		return err
	}
	return setDuration(&c.PollInterval, "POLL_INTERVAL", getenv("POLL_INTERVAL"))
}

// validate applique toutes les règles métier sur la configuration chargée.
func (c *Config) validate() error {
	if strings.TrimSpace(c.Token) == "" {
		return fmt.Errorf("config: BOT_TOKEN est requis et ne peut pas être vide")
	}

	snowflakes := []struct {
		name  string
		value string
	}{
		{"DISCORD_GUILD", c.GuildID},
		{"RECRUITING_CHANNEL_ID", c.RecruitingChannelID},
		{"LUNCH_CHANNEL_ID", c.LunchChannelID},
		{"LUNCH_ROLE_ID", c.LunchRoleID},
		{"LOOKING_FOR_A_JOB_ROLE_ID", c.JobSeekerRoleID},
		{"RECRUITING_ROLE_ID", c.RecruitingRoleID},
	}
	for _, sf := range snowflakes {
		if strings.TrimSpace(sf.value) == "" {
			return fmt.Errorf("config: %s est requis et ne peut pas être vide", sf.name)
		}
		if !isDigits(sf.value) {
			return fmt.Errorf("config: %s doit être un ID Discord (chiffres uniquement)", sf.name)
		}
	}

	if strings.TrimSpace(c.LedgerURL) == "" {
		return fmt.Errorf("config: LEDGER_URL (ou REDIS_URL / DATABASE_URL) est requis")
	}
	parsed, err := url.Parse(c.LedgerURL)
	if err != nil {
		return fmt.Errorf("config: LEDGER_URL invalide: %w", err)
	}
	if parsed.Scheme == "" || parsed.Host == "" {
		return fmt.Errorf("config: LEDGER_URL invalide: scheme ou host manquant")
	}
	if strings.TrimSpace(c.LedgerSetKey) == "" {
		return fmt.Errorf("config: LEDGER_SET_KEY ne peut pas être vide")
	}

	endpoint, err := url.Parse(c.ScheduleEndpoint)
	if err != nil || (endpoint.Scheme != "http" && endpoint.Scheme != "https") || endpoint.Host == "" {
		return fmt.Errorf("config: SCHEDULE_ENDPOINT invalide (%q)", c.ScheduleEndpoint)
	}
	if strings.TrimSpace(c.ConferenceCode) == "" {
		return fmt.Errorf("config: CONFERENCE_CODE ne peut pas être vide")
	}
	if c.PollInterval <= 0 {
		return fmt.Errorf("config: POLL_INTERVAL doit être positif")
	}
	if c.ScheduleTimeout <= 0 {
		return fmt.Errorf("config: SCHEDULE_TIMEOUT doit être positif")
	}
	for _, d := range c.ActiveDays {
		if d < 1 || d > 31 {
			return fmt.Errorf("config: jour actif %d hors de 1..31", d)
		}
	}
	if len(c.ActiveDays) == 0 {
		return fmt.Errorf("config: ACTIVE_DAYS ne peut pas être vide")
	}

	loc, err := tz.Load(c.TimeZone)
	if err != nil {
		return fmt.Errorf("config: TIMEZONE invalide: %w", err)
	}
	c.Location = loc

	return nil
}

func setString(dst *string, v string) {
	if v = strings.TrimSpace(v); v != "" {
		*dst = v
	}
}

func setDuration(dst *time.Duration, name, v string) error {
	v = strings.TrimSpace(v)
	if v == "" {
		return nil
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return fmt.Errorf("config: %s invalide (%q): %w", name, v, err)
	}
	*dst = d
	return nil
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if strings.TrimSpace(v) != "" {
			return v
		}
	}
	return ""
}

func isDigits(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return s != ""
}
