package main

import "testing"

func TestValidateFlags(t *testing.T) {
	tests := []struct {
		name           string
		logLevel       string
		maxConcurrency int
		headers        []string
		wantErr        bool
	}{
		{"默认值", "", 0, nil, false},
		{"合法参数", "debug", 4, []string{"User-Agent: Bot/1.0"}, false},
		{"日志级别不区分大小写", "WARN", 0, nil, false},
		{"无效日志级别", "verbose", 0, nil, true},
		{"负数并发", "", -1, nil, true},
		{"头部缺少冒号", "", 0, []string{"InvalidFormat"}, true},
		{"头部名称为空", "", 0, []string{": value"}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateFlags(tt.logLevel, tt.maxConcurrency, tt.headers)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateFlags() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}
