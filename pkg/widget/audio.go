package widget

// AudioPlayer 音频播放能力
//
// 没有错误返回值：播放失败（设备不可用、文件缺失等）由实现方吞掉。
type AudioPlayer interface {
	// PlayOneShot 播放一次性音效，多次调用可以互相重叠
	PlayOneShot()
	// StartLoop 从头开始播放循环音，同一时间最多一个
	StartLoop()
	// StopLoop 暂停并倒带循环音，可重复调用
	StopLoop()
}

// silentAudio 未提供音频时使用
type silentAudio struct{}

func (silentAudio) PlayOneShot() {}
func (silentAudio) StartLoop()   {}
func (silentAudio) StopLoop()    {}
