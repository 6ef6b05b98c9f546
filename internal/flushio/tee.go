package flushio

import "io"

// WriteFlushers fans writes and flushes out to every non-nil flusher given,
// flattening any that are themselves the product of a prior WriteFlushers
// call so chained WithTee options don't nest wrapper layers.
func WriteFlushers(wfs ...WriteFlusher) WriteFlusher {
	flat := flatten(nil, wfs...)
	switch len(flat) {
	case 0:
		return nil
	case 1:
		return flat[0]
	default:
		return flat
	}
}

type multiFlusher []WriteFlusher

func (m multiFlusher) Write(p []byte) (n int, err error) {
	for _, wf := range m {
		n, err = wf.Write(p)
		if err != nil {
			return n, err
		}
		if n != len(p) {
			return n, io.ErrShortWrite
		}
	}
	return len(p), nil
}

func (m multiFlusher) Flush() (err error) {
	for _, wf := range m {
		if ferr := wf.Flush(); err == nil {
			err = ferr
		}
	}
	return err
}

func flatten(into multiFlusher, wfs ...WriteFlusher) multiFlusher {
	for _, wf := range wfs {
		switch impl := wf.(type) {
		case nil:
		case multiFlusher:
			into = append(into, impl...)
		default:
			into = append(into, wf)
		}
	}
	return into
}
