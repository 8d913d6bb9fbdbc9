//go:build mobile

// embed.go - 移动端调优数据嵌入声明
//
// 此文件仅在使用 -tags mobile 构建时编译，
// 构建前需要先把 data/tuning.yaml 复制到 mobile/data/。
package mobile

import "embed"

//go:embed data/tuning.yaml
var dataFS embed.FS
