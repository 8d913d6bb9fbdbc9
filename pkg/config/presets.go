package config

import (
	"fmt"
	"path"
	"strings"

	"github.com/gonewx/horde/pkg/embedded"
)

// PresetDir 内置调优预设目录
//
// 预设文件只写需要覆盖的字段，解析方式与 data/tuning.yaml 相同。
// 敌人和 Boss 表按整项覆盖，预设中不要只写其中一部分字段。
const PresetDir = "data/presets"

// PresetPath 返回预设名对应的嵌入路径
func PresetPath(name string) string {
	return path.Join(PresetDir, name+".yaml")
}

// ListPresets 按名称排序返回全部内置预设
func ListPresets() ([]string, error) {
	matches, err := embedded.Glob(PresetDir + "/*.yaml")
	if err != nil {
		return nil, fmt.Errorf("failed to list presets: %w", err)
	}
	names := make([]string, 0, len(matches))
	for _, m := range matches {
		names = append(names, strings.TrimSuffix(path.Base(m), ".yaml"))
	}
	return names, nil
}

// LoadEmbeddedPreset 加载一个内置预设
func LoadEmbeddedPreset(name string) (*Tuning, error) {
	p := PresetPath(name)
	if name == "" || strings.ContainsAny(name, `/\`) || !embedded.Exists(p) {
		available, _ := ListPresets()
		return nil, fmt.Errorf("unknown preset %q (available: %s)", name, strings.Join(available, ", "))
	}
	return LoadEmbeddedTuning(p)
}
