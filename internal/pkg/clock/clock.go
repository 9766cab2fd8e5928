package clock

import "time"

// Clock fornece o instante atual. É injetado onde a regra depende do "hoje"
// (ex.: cálculo de idade), para que os testes controlem a data.
type Clock func() time.Time

// System retorna o relógio do sistema no fuso informado (nil = horário local).
func System(loc *time.Location) Clock {
	if loc == nil {
		return time.Now
	}
	return func() time.Time { return time.Now().In(loc) }
}

// Fixed retorna sempre o mesmo instante.
func Fixed(t time.Time) Clock {
	return func() time.Time { return t }
}

// LoadLocation carrega o fuso pelo nome IANA; em caso de falha usa time.Local.
func LoadLocation(name string) (*time.Location, error) {
	if name == "" {
		return time.Local, nil
	}
	loc, err := time.LoadLocation(name)
	if err != nil {
		return time.Local, err
	}
	return loc, nil
}
