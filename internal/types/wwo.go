package types

// wwoToWMO maps World Weather Online condition codes (used by wttr.in)
// onto the closest WMO code.
var wwoToWMO = map[int]WeatherCode{
	113: ClearSky,
	116: PartlyCloudy,
	119: Overcast,
	122: Overcast,
	143: Fog,
	176: RainShowersSlight,
	179: SnowShowersSlight,
	182: FreezingRainLight,
	185: FreezingDrizzleLight,
	200: ThunderstormSlightOrModerate,
	227: SnowFallModerate,
	230: SnowFallHeavy,
	248: Fog,
	260: DepositingRimeFog,
	263: DrizzleLight,
	266: DrizzleLight,
	281: FreezingDrizzleLight,
	284: FreezingDrizzleDense,
	293: RainSlight,
	296: RainSlight,
	299: RainModerate,
	302: RainModerate,
	305: RainHeavy,
	308: RainHeavy,
	311: FreezingRainLight,
	314: FreezingRainHeavy,
	317: FreezingRainLight,
	320: FreezingRainHeavy,
	323: SnowFallSlight,
	326: SnowFallSlight,
	329: SnowFallModerate,
	332: SnowFallModerate,
	335: SnowFallHeavy,
	338: SnowFallHeavy,
	350: SnowGrains,
	353: RainShowersSlight,
	356: RainShowersModerate,
	359: RainShowersViolent,
	362: RainShowersSlight,
	365: RainShowersModerate,
	368: SnowShowersSlight,
	371: SnowShowersHeavy,
	374: SnowGrains,
	377: SnowGrains,
	386: ThunderstormSlightOrModerate,
	389: ThunderstormSlightOrModerate,
	392: ThunderstormSlightOrModerate,
	395: ThunderstormWithHeavyHail,
}

// WeatherCodeFromWWO returns the WMO equivalent, or UnknownWeather
func WeatherCodeFromWWO(code int) WeatherCode {
	if c, ok := wwoToWMO[code]; ok {
		return c
	}
	return UnknownWeather
}
