//go:build !mobile

// stub.go - 普通构建时的占位文件
// 移动端入口只在 -tags mobile 时编译
package mobile

// Dummy 占位导出函数
func Dummy() {}
