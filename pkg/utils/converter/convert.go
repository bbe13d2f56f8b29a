package converter

import (
	"strconv"
)

func ConvertStrToInt(input string) (int, error) {
	res, err := strconv.Atoi(input)
	if err != nil {
		return -1, err
	}

	return res, nil
}

func ConvertStrToInt32(input string) (int32, error) {
	res, err := strconv.ParseInt(input, 10, 32)
	if err != nil {
		return -1, err
	}

	return int32(res), nil
}

func ConvertInt32ToString(input int32) string {
	return strconv.FormatInt(int64(input), 10)
}

func ConvertStrToFloat64(input string) (float64, error) {
	res, err := strconv.ParseFloat(input, 64)
	if err != nil {
		return -1, err
	}

	return res, nil
}
