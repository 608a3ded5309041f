// Package inject holds the fixed JavaScript payloads the capture
// commands run inside the page, plus decoders for what they return. The
// protocol layer treats these as opaque strings.
package inject

// ConsoleInstall wraps the page's console methods once and buffers every
// call under window.__safariCliConsole. It returns true when the hook
// was already present, so installing twice never double-wraps.
const ConsoleInstall = `
if (window.__safariCliConsole) { return true; }
var buffer = [];
window.__safariCliConsole = buffer;
['log', 'info', 'warn', 'error', 'debug'].forEach(function (level) {
  var original = console[level];
  console[level] = function () {
    var parts = [];
    for (var i = 0; i < arguments.length; i++) {
      var arg = arguments[i];
      try {
        parts.push(typeof arg === 'string' ? arg : JSON.stringify(arg));
      } catch (e) {
        parts.push(String(arg));
      }
    }
    buffer.push({ level: level, text: parts.join(' '), timestamp: Date.now() });
    if (original) { original.apply(console, arguments); }
  };
});
return false;
`

// ConsoleCollect returns the buffered console entries. Its one argument
// says whether to drain the buffer after reading.
const ConsoleCollect = `
var buffer = window.__safariCliConsole || [];
if (arguments[0]) {
  return buffer.splice(0, buffer.length);
}
return buffer.slice();
`

// NetworkCollect reads the page's resource timing entries. Its one
// argument says whether to clear the timing buffer after reading.
const NetworkCollect = `
var entries = performance.getEntriesByType('resource').map(function (e) {
  return {
    url: e.name,
    initiatorType: e.initiatorType,
    startTime: e.startTime,
    duration: e.duration,
    transferSize: e.transferSize || 0
  };
});
if (arguments[0]) { performance.clearResourceTimings(); }
return entries;
`
