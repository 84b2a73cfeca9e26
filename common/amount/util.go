package amount

func formatFractional(str string) string {
	pads := []byte("000000000000000000")
	copy(pads[len(pads)-len(str):], str)
	last := len(pads)
	for last > 0 && pads[last-1] == '0' {
		last--
	}
	return string(pads[:last])
}

func padFractional(str string) string {
	pads := []byte("000000000000000000")
	copy(pads, str)
	return string(pads)
}
