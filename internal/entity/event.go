package entity

// Event describes the seminar the booking form registers for.
type Event struct {
	Name      string `mapstructure:"name"`
	Dates     string `mapstructure:"dates"`
	Time      string `mapstructure:"time"`
	Venue     string `mapstructure:"venue"`
	BannerURL string `mapstructure:"banner_url"`
}
