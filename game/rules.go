package game

// WallSpec describes one wall in its intact and damaged forms.
type WallSpec struct {
	Length         int     `yaml:"length"`
	DamagedLength  int     `yaml:"damaged_length"`
	Pattern        Pattern `yaml:"pattern"`
	DamagedPattern Pattern `yaml:"damaged_pattern"`
}

type Rules struct {
	HandSize     int        `yaml:"hand_size"`
	Cauldrons    int        `yaml:"cauldrons"`
	DamagedToWin int        `yaml:"damaged_to_win"`
	Walls        []WallSpec `yaml:"walls"`
}

func StandardRules() Rules {
	return Rules{
		HandSize:     6,
		Cauldrons:    3,
		DamagedToWin: 4,
		Walls: []WallSpec{
			{Length: 3, DamagedLength: 3, Pattern: PlusPattern, DamagedPattern: RunPattern},
			{Length: 4, DamagedLength: 2, Pattern: NoPattern, DamagedPattern: EqualsPattern},
			{Length: 3, DamagedLength: 3, Pattern: NoPattern, DamagedPattern: ColorPattern},
			{Length: 2, DamagedLength: 4, Pattern: NoPattern, DamagedPattern: MinusPattern},
			{Length: 3, DamagedLength: 3, Pattern: NoPattern, DamagedPattern: ColorPattern},
			{Length: 4, DamagedLength: 2, Pattern: NoPattern, DamagedPattern: EqualsPattern},
			{Length: 3, DamagedLength: 3, Pattern: MinusPattern, DamagedPattern: RunPattern},
		},
	}
}
