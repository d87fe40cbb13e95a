package core

// MockPWMDriver is a test implementation of PWMDriver
type MockPWMDriver struct {
	top        PWMValue
	configured int
	compare    PWMValue
	writes     []PWMValue
}

func (m *MockPWMDriver) Configure(top PWMValue) {
	m.top = top
	m.configured++
}

func (m *MockPWMDriver) SetCompare(value PWMValue) {
	m.compare = value
	m.writes = append(m.writes, value)
}

// MockADCDriver is a test implementation of ADCDriver
type MockADCDriver struct {
	cfg     ADCConfig
	handler SampleHandler
	calls   []string
}

func (m *MockADCDriver) Configure(cfg ADCConfig) {
	m.cfg = cfg
	m.calls = append(m.calls, "configure")
}

func (m *MockADCDriver) Start(handler SampleHandler) {
	m.handler = handler
	m.calls = append(m.calls, "start")
}

// complete simulates a conversion-complete interrupt.
func (m *MockADCDriver) complete(raw ADCValue) {
	Dispatch(m.handler, raw)
}

// errPowerDown stops Idle from inside a Sleep call.
type errPowerDown struct{}

// MockSleeper counts sleep requests and powers down after a limit.
type MockSleeper struct {
	prepared bool
	sleeps   int
	limit    int
	onSleep  func()
}

func (m *MockSleeper) Prepare() {
	m.prepared = true
}

func (m *MockSleeper) Sleep() {
	m.sleeps++
	if m.onSleep != nil {
		m.onSleep()
	}
	if m.sleeps >= m.limit {
		panic(errPowerDown{})
	}
}

// runUntilPowerDown runs f and swallows the MockSleeper power-down panic.
func runUntilPowerDown(f func()) (stopped bool) {
	defer func() {
		if r := recover(); r != nil {
			if _, ok := r.(errPowerDown); !ok {
				panic(r)
			}
			stopped = true
		}
	}()
	f()
	return false
}
